package catalog

import (
	"strings"

	"github.com/uryuwr/cardgrab/internal/model"
)

// MapDetail translates a raw catalog detail record into the canonical card
// record. The local image path is filled in later, after a successful
// download.
//
// The catalog reuses one numeric slot (cardLife) for two meanings: for
// leader cards it is the life total, for every other kind it is the play
// cost. MapDetail routes it so that exactly one of Cost and Life is set.
//
// SetCode is always derived from the card number; the raw payload's own
// set information is not trusted.
func MapDetail(raw *RawDetail) *model.Card {
	number := strings.TrimSpace(raw.CardNumber)

	card := &model.Card{
		CardNumber: number,
		Name:       raw.CardName,
		NameCN:     raw.CardName,
		Kind:       raw.CardType,
		Color:      raw.CardColor,
		Power:      raw.CardPower.Int(),
		Counter:    raw.CardAttack.Int(),
		Attribute:  strings.Join(raw.CardAttribute, "/"),
		Effect:     raw.CardTextDesc,
		Trigger:    raw.CardTrigger,
		Trait:      raw.CardFeatures,
		Rarity:     raw.CardRarity,
		SetCode:    model.ExtractSetCode(number),
		ImageURL:   raw.CardImg,
	}

	shared := raw.CardLife.Int()
	if card.IsLeader() {
		card.Life = shared
	} else {
		card.Cost = shared
	}

	return card
}
