package model

// Card kind labels as they appear in the remote catalog payloads.
// The catalog is Chinese-language, so the labels are Chinese strings.
const (
	// KindLeader is the leader card kind. For leaders the shared numeric
	// field of the catalog payload holds the life total, not the cost.
	KindLeader = "领袖"
	// KindCharacter is the character card kind.
	KindCharacter = "角色"
	// KindEvent is the event card kind.
	KindEvent = "事件"
	// KindStage is the stage card kind.
	KindStage = "舞台"
)

// Card is the canonical card record persisted by the crawler.
// CardNumber is the natural key (format "SET-NNN" or "P-NNN"); every upsert
// is keyed on it.
//
// Optional numeric attributes use pointers so that "absent" is
// distinguishable from zero: an absent value on an incoming record must
// never erase a stored value (see database.UpsertCard).
//
// Invariant: exactly one of Cost and Life is set, decided by Kind.
// Leaders carry Life; every other kind carries Cost. Both are sourced from
// the same raw catalog field (see catalog.MapDetail).
type Card struct {
	// CardNumber is the globally unique human-readable identifier,
	// e.g. "EB04-001" or "P-006".
	CardNumber string `json:"card_number"`

	// Name is the canonical card name.
	Name string `json:"name"`

	// NameCN is the localized (Chinese) card name. The catalog serves a
	// single name, so this mirrors Name today; the column exists so a
	// future multi-language source can diverge.
	NameCN string `json:"name_cn"`

	// Kind is the card kind label (KindLeader, KindCharacter, ...).
	Kind string `json:"card_type"`

	// Color is the card color, possibly multi-valued ("红/绿").
	Color string `json:"color"`

	// Cost is the play cost. Nil for leaders.
	Cost *int `json:"cost,omitempty"`

	// Power is the battle power. Nil when the card has none.
	Power *int `json:"power,omitempty"`

	// Counter is the counter value. Nil when the card has none.
	Counter *int `json:"counter,omitempty"`

	// Life is the leader life total. Nil for non-leader kinds.
	Life *int `json:"life,omitempty"`

	// Attribute is the slash-joined attribute tag list, e.g. "斩/特".
	Attribute string `json:"attribute"`

	// Effect is the card effect text.
	Effect string `json:"effect"`

	// Trigger is the trigger effect text.
	Trigger string `json:"trigger"`

	// Trait is the character trait line.
	Trait string `json:"trait"`

	// Rarity is the rarity label (C, UC, R, SR, SEC, L, ...).
	Rarity string `json:"rarity"`

	// SetCode is derived from CardNumber by stripping the trailing "-NNN"
	// suffix. It is always computed locally, never trusted from the
	// remote payload.
	SetCode string `json:"set_code"`

	// ImageURL is the remote card image URL.
	ImageURL string `json:"image_url"`

	// ImageLocal is the path of the downloaded image relative to the
	// cards directory. Empty until a download succeeds.
	ImageLocal string `json:"image_local,omitempty"`
}

// IsLeader reports whether the card is a leader card.
func (c *Card) IsLeader() bool {
	return c.Kind == KindLeader
}
