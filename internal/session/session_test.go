package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func company() State {
	s := New("nephi")
	s.Company = []Warlord{
		{Name: "moroni", Soldiers: 120, Level: 3, Items: []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
		{Name: "teancum", Soldiers: 0, Level: 2},
		{Name: "lehi", Soldiers: 40, Level: 1},
	}
	return s
}

func TestAddToInventory(t *testing.T) {
	tests := []struct {
		name        string
		state       func() State
		item        Item
		wantHolder  string
		wantSurplus []string
	}{
		{
			name:       "skips full and defeated members",
			state:      company,
			item:       Item{ID: "chest-1", Name: "sword"},
			wantHolder: "lehi",
		},
		{
			name: "nobody qualifies",
			state: func() State {
				s := company()
				s.Company = s.Company[:2]
				return s
			},
			item:        Item{Name: "herb"},
			wantSurplus: []string{"herb"},
		},
		{
			name:        "empty company",
			state:       func() State { return New("x") },
			item:        Item{Name: "herb"},
			wantSurplus: []string{"herb"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state()
			assert.Equal(t, tt.wantHolder, s.AddToInventory(tt.item))
			assert.Equal(t, tt.wantSurplus, s.Surplus)
			assert.Equal(t, tt.item.ID != "", s.Acquired(tt.item.ID))
		})
	}
}

func TestAddToInventoryPlacesOnce(t *testing.T) {
	s := company()
	s.Company[1].Soldiers = 10
	assert.Equal(t, "teancum", s.AddToInventory(Item{Name: "bow"}))
	assert.Equal(t, []string{"bow"}, s.Company[1].Items)
	assert.Empty(t, s.Company[2].Items)
}

func TestAddToInventoryDoesNotAlias(t *testing.T) {
	s := company()
	before := s.Clone()
	s.AddToInventory(Item{ID: "x", Name: "bow"})
	assert.Empty(t, before.Company[2].Items)
	assert.Empty(t, before.AcquiredItems)
}

func TestRecordRoundTrip(t *testing.T) {
	s := company()
	s.Map = "overworld"
	s.Position = [2]int{4, 7}
	s.Facing = "left"

	rec, err := s.ToRecord()
	require.NoError(t, err)
	assert.Equal(t, "nephi", rec["name"])
	assert.Equal(t, "overworld", rec["current_map"])

	back, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestFromRecordMinimal(t *testing.T) {
	s, err := FromRecord(map[string]any{"name": "alma", "level": 0})
	require.NoError(t, err)
	assert.Equal(t, New("alma"), s)
	assert.False(t, s.Started())
	_, ok := s.Leader()
	assert.False(t, ok)

	_, err = FromRecord(map[string]any{"level": "high"})
	assert.ErrorContains(t, err, "decode state")
}

func TestMerge(t *testing.T) {
	s := company()
	require.NoError(t, s.Merge(map[string]any{"level": 4, "current_map": "sierra_pass"}))
	assert.Equal(t, 4, s.Level)
	assert.Equal(t, "sierra_pass", s.Map)
	assert.Len(t, s.Company, 3, "keys not named are kept")
	assert.True(t, s.Started())
}

func TestMessageLog(t *testing.T) {
	l := NewMessageLog(3, 10)
	l.Add("the army of helaman", Speech)
	assert.Equal(t, []Message{{"the army", Speech}, {"of helaman", Speech}}, l.Messages)

	l.Add("march", Narration)
	l.Add("onward", Alarm)
	require.Len(t, l.Messages, 3)
	assert.Equal(t, "of helaman", l.Messages[0].Text)
	assert.Equal(t, []Message{{"onward", Alarm}}, l.Recent(1))
	assert.Len(t, l.Recent(10), 3)

	l.Clear()
	assert.Empty(t, l.Recent(2))
}

func TestMessageLogClampsSizes(t *testing.T) {
	narrow := NewMessageLog(4, 0)
	narrow.Add("Captain Moroni", Narration)
	require.Len(t, narrow.Messages, 4)
	for _, msg := range narrow.Messages {
		assert.Len(t, msg.Text, 1)
	}
	assert.Equal(t, "i", narrow.Messages[3].Text)

	short := NewMessageLog(0, 10)
	short.Add("hello", Narration)
	short.Add("world", Speech)
	assert.Equal(t, []Message{{"world", Speech}}, short.Messages)

	assert.NotPanics(t, func() {
		NewMessageLog(-3, -2).Add("the sword of laban", Alarm)
	})
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("   ", 5))
	assert.Equal(t, []string{"abcde", "fgh", "ij"}, wrapText("abcdefgh ij", 5))
	assert.Equal(t, []string{"a", "b"}, wrapText("ab", 0))
	for _, line := range wrapText(strings.Repeat("word ", 40), 12) {
		assert.LessOrEqual(t, len(line), 12)
	}
}

func TestBlink(t *testing.T) {
	assert.True(t, IsHalfSecond(0))
	assert.True(t, IsHalfSecond(1500*time.Millisecond))
	assert.False(t, IsHalfSecond(1700*time.Millisecond))
	assert.True(t, IsQuarterSecond(2*time.Second+100*time.Millisecond))
	assert.False(t, IsQuarterSecond(400*time.Millisecond))
}
