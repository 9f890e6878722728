package models

import (
	"fmt"
	"strconv"
	"time"

	"kitinventory/core/catalog"
)

// EventTypeAcquisition marks an event recording the acquisition of one kit.
const EventTypeAcquisition = "acquisition"

// Kit identifies a purchasable/buildable construction set. Immutable once
// selected from search.
type Kit struct {
	ID     int    `json:"id"`
	PartNo string `json:"partNo"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	URI    string `json:"uri"`
}

// Part is a single piece type within a kit. ExpectedCount is fixed at fetch
// time; Count is adjusted during reconciliation and never drops below zero.
type Part struct {
	ID            int    `json:"id"`
	PartNo        string `json:"partNo"`
	VariantID     string `json:"variantId"`
	Name          string `json:"name"`
	ExpectedCount int    `json:"expectedCount"`
	Count         int    `json:"count"`
	Category      string `json:"category"`
	CategoryName  string `json:"categoryName"`
	Image         string `json:"image"`
}

// Metadata carries the acquisition form fields for one registered kit.
type Metadata struct {
	AcquiredOn      string `json:"acquiredOn"`
	AcquiredFrom    string `json:"acquiredFrom"`
	AcquisitionType string `json:"acquisitionType"`
	Condition       string `json:"condition"`
	ProofOfPurchase string `json:"proofOfPurchase"`
}

// PartMap is a unique-keyed collection of Parts indexed by part id.
// Every entry satisfies m[id].ID == id.
type PartMap map[int]Part

// Put inserts or replaces the entry for the part's id.
func (m PartMap) Put(p Part) {
	m[p.ID] = p
}

// Clone returns an independent deep copy of the map. Part itself has value
// semantics, so copying the entries is sufficient.
func (m PartMap) Clone() PartMap {
	if m == nil {
		return nil
	}
	out := make(PartMap, len(m))
	for id, p := range m {
		out[id] = p
	}
	return out
}

// TotalCount returns the sum of Count over all parts.
func (m PartMap) TotalCount() int {
	total := 0
	for _, p := range m {
		total += p.Count
	}
	return total
}

// AcquisitionEvent records the acquisition of one kit together with an
// independent snapshot of its reconciled parts. Once appended to the event
// log it is never modified.
type AcquisitionEvent struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	EventType string    `json:"eventType"`
	System    string    `json:"system"`
	Metadata  Metadata  `json:"metadata"`
	Kit       Kit       `json:"kit"`
	Parts     PartMap   `json:"parts"`
}

// SystemSummary is the derived aggregate for one collectible system. It is a
// pure projection of the event log and is never mutated independently.
type SystemSummary struct {
	Pieces     int `json:"pieces"`
	PieceTypes int `json:"pieceTypes"`
	Kits       int `json:"kits"`
}

// PartFromTicket converts a raw catalog record into a Part. Both the expected
// and the actual count start out equal; the image name is prefixed with the
// thumbnail path.
func PartFromTicket(rec catalog.TicketRecord, thumbnailPath string) (Part, error) {
	id, err := strconv.Atoi(rec.TicketID)
	if err != nil {
		return Part{}, fmt.Errorf("invalid ticket_id %q: %w", rec.TicketID, err)
	}

	// A missing or malformed count means the catalog doesn't know; zero is
	// the honest value and the collector can adjust upward.
	count, _ := strconv.Atoi(rec.Count)

	return Part{
		ID:            id,
		PartNo:        rec.ArticleNos,
		VariantID:     rec.VariantUUID,
		Name:          rec.Title,
		ExpectedCount: count,
		Count:         count,
		Category:      rec.CategoryAll,
		CategoryName:  rec.CategoryAllText,
		Image:         thumbnailPath + rec.Icon,
	}, nil
}

// KitFromTicket converts a raw catalog search record into a Kit.
func KitFromTicket(rec catalog.TicketRecord, thumbnailPath string) (Kit, error) {
	id, err := strconv.Atoi(rec.TicketID)
	if err != nil {
		return Kit{}, fmt.Errorf("invalid ticket_id %q: %w", rec.TicketID, err)
	}

	return Kit{
		ID:     id,
		PartNo: rec.ArticleNos,
		Name:   rec.Title,
		Image:  thumbnailPath + rec.Icon,
		URI:    fmt.Sprintf("/catalog/partslist/%d", id),
	}, nil
}
