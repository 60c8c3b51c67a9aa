// file: assets/images.go
package assets

// 标题到静态卡片图的映射，与素材库同步维护
var imageByTitle = map[string]string{
	"Strength and Gym Challenge": "/static/img/strength.png",
	"Hydration Challenge":        "/static/img/hydration.png",
	"10K Steps Challenge":        "/static/img/steps.png",
	"Digital Hour Detox":         "/static/img/digital_detox.png",
	"Sleep Reset Challenge":      "/static/img/sleep_reset.png",
	"Healthy Snack Swap":         "/static/img/healthy_snack.png",
	"Mindful Morning Stretch":    "/static/img/morning_stretch.png",
	"Yoga for Beginners":         "/static/img/yoga_beginners.png",
}

// PlaceholderImage 回退链的兜底图
const PlaceholderImage = "/static/img/placeholder.png"

// ResolveImage 按回退链解析卡片图：标题映射 -> 后端 imageUrl -> 占位图。
// 返回值保证非空。
func ResolveImage(title, serverURL string) string {
	if ref, ok := imageByTitle[title]; ok {
		return ref
	}
	if serverURL != "" {
		return serverURL
	}
	return PlaceholderImage
}
