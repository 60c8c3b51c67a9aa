// file: mappers/challenge_mapper.go
package mappers

import (
	"github.com/TammyBarlow/ur-fit-cards/assets"
	"github.com/TammyBarlow/ur-fit-cards/dto"
	"github.com/TammyBarlow/ur-fit-cards/models"
)

// MapRecordToChallenge 上游原始记录 -> 装饰后的 Challenge。
// 调用方需先执行 rec.Normalize()。
func MapRecordToChallenge(rec dto.ChallengeRecord) models.Challenge {
	return models.Challenge{
		ID:               rec.ID,
		Title:            rec.Title,
		Description:      rec.Description,
		TotalDays:        rec.TotalDays,
		ParticipantCount: rec.ParticipantCount,
		ImageRef:         assets.ResolveImage(rec.Title, rec.ImageURL),
		Joined:           rec.Joined,
	}
}

func MapChallengeToCard(ch models.Challenge, coordinator bool) dto.ChallengeCard {
	return dto.ChallengeCard{
		ID:               ch.ID,
		Title:            ch.Title,
		Description:      ch.Description,
		TotalDays:        ch.TotalDays,
		ParticipantCount: ch.ParticipantCount,
		ImageRef:         ch.ImageRef,
		IsCoordinator:    coordinator,
		Joined:           ch.Joined,
	}
}

func MapChallengesToCards(list []models.Challenge, coordinator bool) []dto.ChallengeCard {
	cards := make([]dto.ChallengeCard, 0, len(list))
	for _, ch := range list {
		cards = append(cards, MapChallengeToCard(ch, coordinator))
	}
	return cards
}
