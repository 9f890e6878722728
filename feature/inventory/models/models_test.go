package models

import (
	"testing"

	"kitinventory/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartFromTicket(t *testing.T) {
	rec := catalog.TicketRecord{
		TicketID:        "31300",
		ArticleNos:      "31300",
		VariantUUID:     "a1b2-c3",
		Title:           "Baustein 30",
		Count:           "12",
		CategoryAll:     "654",
		CategoryAllText: "Bausteine",
		Icon:            "31300.png",
	}

	part, err := PartFromTicket(rec, "/thumbnail/")
	require.NoError(t, err)

	assert.Equal(t, 31300, part.ID)
	assert.Equal(t, "31300", part.PartNo)
	assert.Equal(t, "a1b2-c3", part.VariantID)
	assert.Equal(t, "Baustein 30", part.Name)
	assert.Equal(t, 12, part.ExpectedCount)
	assert.Equal(t, 12, part.Count, "expected and actual count start out equal")
	assert.Equal(t, "654", part.Category)
	assert.Equal(t, "Bausteine", part.CategoryName)
	assert.Equal(t, "/thumbnail/31300.png", part.Image)
}

func TestPartFromTicket_InvalidID(t *testing.T) {
	_, err := PartFromTicket(catalog.TicketRecord{TicketID: "not-a-number"}, "/thumbnail/")
	assert.Error(t, err)
}

func TestPartFromTicket_MalformedCount(t *testing.T) {
	part, err := PartFromTicket(catalog.TicketRecord{TicketID: "7", Count: "n/a"}, "/thumbnail/")
	require.NoError(t, err)
	assert.Equal(t, 0, part.ExpectedCount)
	assert.Equal(t, 0, part.Count)
}

func TestKitFromTicket(t *testing.T) {
	rec := catalog.TicketRecord{
		TicketID:   "548885",
		ArticleNos: "548885",
		Title:      "Universal 4",
		Icon:       "548885.png",
	}

	kit, err := KitFromTicket(rec, "/thumbnail/")
	require.NoError(t, err)

	assert.Equal(t, 548885, kit.ID)
	assert.Equal(t, "Universal 4", kit.Name)
	assert.Equal(t, "/thumbnail/548885.png", kit.Image)
	assert.Equal(t, "/catalog/partslist/548885", kit.URI)
}

func TestPartMap_PutKeysByID(t *testing.T) {
	m := make(PartMap)
	m.Put(Part{ID: 1, Count: 2})
	m.Put(Part{ID: 2, Count: 3})
	m.Put(Part{ID: 1, Count: 5})

	require.Len(t, m, 2)
	for id, p := range m {
		assert.Equal(t, id, p.ID)
	}
	assert.Equal(t, 5, m[1].Count, "later writes win on duplicate ids")
}

func TestPartMap_CloneIsIndependent(t *testing.T) {
	m := PartMap{1: {ID: 1, Count: 4}}
	clone := m.Clone()

	p := m[1]
	p.Count = 99
	m.Put(p)
	m.Put(Part{ID: 2, Count: 1})

	require.Len(t, clone, 1)
	assert.Equal(t, 4, clone[1].Count)
}

func TestPartMap_CloneNil(t *testing.T) {
	var m PartMap
	assert.Nil(t, m.Clone())
}

func TestPartMap_TotalCount(t *testing.T) {
	m := PartMap{
		1: {ID: 1, Count: 4},
		2: {ID: 2, Count: 6},
	}
	assert.Equal(t, 10, m.TotalCount())
	assert.Equal(t, 0, PartMap{}.TotalCount())
}
