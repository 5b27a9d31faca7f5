package curation

import "strings"

// Confidence levels for the zero-network room classifier.
const (
	nameMatchConfidence   = 0.85
	defaultRoomConfidence = 0.3
)

// roomTypeOrder fixes keyword matching order so classification is
// deterministic regardless of map iteration.
var roomTypeOrder = []RoomType{
	RoomLivingRoom,
	RoomBedroom,
	RoomDiningRoom,
	RoomKitchen,
	RoomOffice,
	RoomKidsRoom,
	RoomOutdoor,
}

// classifyRoomTypeByName keyword-matches a free-text room name against
// per-type keyword lists. Unmatched names classify as OTHER at low
// confidence.
func classifyRoomTypeByName(name string) RoomClassificationOutput {
	lower := strings.ToLower(name)
	for _, roomType := range roomTypeOrder {
		for _, keyword := range roomNameKeywords[roomType] {
			if strings.Contains(lower, keyword) {
				return RoomClassificationOutput{
					Type:       roomType,
					Confidence: nameMatchConfidence,
					Source:     SourceFallback,
				}
			}
		}
	}
	return RoomClassificationOutput{
		Type:       RoomOther,
		Confidence: defaultRoomConfidence,
		Source:     SourceFallback,
	}
}
