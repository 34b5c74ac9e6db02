package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexString decodes a JSON value that may arrive as a string, a number,
// or null. The catalog serves numeric card attributes inconsistently:
// sometimes as numbers, sometimes as strings, and uses the literal "-" as
// a placeholder for "no value". Decoding never fails on these shapes.
type flexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	// Bare token: number, boolean, whatever. Keep the raw text.
	*f = flexString(s)
	return nil
}

// Int parses the value as an integer. The placeholder "-", the empty
// string, and any non-numeric text all map to nil rather than an error:
// numeric parsing at this boundary is lenient and total.
func (f flexString) Int() *int {
	s := strings.TrimSpace(string(f))
	if s == "" || s == "-" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// String returns the raw string value.
func (f flexString) String() string {
	return string(f)
}

// flexStrings decodes a JSON value that may arrive as an array of strings,
// a single string, or null. Card attribute lists use all three shapes.
type flexStrings []string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexStrings) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var v []string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = v
		return nil
	}
	var single flexString
	if err := single.UnmarshalJSON(data); err != nil {
		return err
	}
	if single == "" {
		*f = nil
		return nil
	}
	*f = []string{string(single)}
	return nil
}

// ListItem is one entry of a catalog list page. It is ephemeral: the
// crawler uses the remote id for deduplication and detail fetches, and the
// image URL for card-number correlation and downloads. It is never
// persisted.
type ListItem struct {
	// ID is the remote numeric id used by the detail endpoint.
	ID int64 `json:"id"`

	// CardImg is the card image URL. Its filename encodes the card number.
	CardImg string `json:"cardImg"`
}

// PageResult is one page of the catalog list plus pagination metadata.
type PageResult struct {
	// Items are the page entries in remote order.
	Items []ListItem

	// TotalPage is the total page count the service reports. The crawler
	// treats it as advisory: an empty page also terminates paging.
	TotalPage int

	// TotalCount is the total item count the service reports.
	TotalCount int
}

// listResponse is the wire shape of the list endpoint.
type listResponse struct {
	Page struct {
		List       []ListItem `json:"list"`
		TotalPage  int        `json:"totalPage"`
		TotalCount int        `json:"totalCount"`
	} `json:"page"`
}

// RawDetail is the raw card detail record as served by the detail
// endpoint. Numeric fields stay as lenient flexString values until
// MapDetail routes and parses them; see the cost/life reinterpretation
// there.
type RawDetail struct {
	// ID is the remote numeric id.
	ID int64 `json:"id"`

	// CardNumber is the printed card number, e.g. "EB04-001".
	CardNumber string `json:"cardNumber"`

	// CardName is the (Chinese) card name.
	CardName string `json:"cardName"`

	// CardType is the kind label (model.KindLeader and friends).
	CardType string `json:"cardType"`

	// CardColor is the color label, possibly multi-valued.
	CardColor string `json:"cardColor"`

	// CardLife is the shared numeric slot: life for leaders, cost for
	// every other kind.
	CardLife flexString `json:"cardLife"`

	// CardPower is the battle power.
	CardPower flexString `json:"cardPower"`

	// CardAttack is, despite the name, the counter value.
	CardAttack flexString `json:"cardAttack"`

	// CardAttribute is the attribute tag list.
	CardAttribute flexStrings `json:"cardAttribute"`

	// CardTextDesc is the effect text.
	CardTextDesc string `json:"cardTextDesc"`

	// CardTrigger is the trigger text.
	CardTrigger string `json:"cardTrigger"`

	// CardFeatures is the trait line.
	CardFeatures string `json:"cardFeatures"`

	// CardRarity is the rarity label.
	CardRarity string `json:"cardRarity"`

	// CardImg is the card image URL.
	CardImg string `json:"cardImg"`
}

// detailResponse is the wire shape of the detail endpoint. A zero code
// with a populated info object is the success case; anything else means
// the id resolved to nothing.
type detailResponse struct {
	Code int        `json:"code"`
	Info *RawDetail `json:"info"`
}

// setsResponse is the wire shape of the set-catalog endpoint.
type setsResponse struct {
	List []setEntry `json:"list"`
}

// setEntry is one set of the set catalog.
type setEntry struct {
	Name string `json:"name"`
}
