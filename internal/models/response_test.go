package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageFixture(id uint, url string, primary bool) PropertyImage {
	return PropertyImage{
		ID:        id,
		URL:       url,
		IsPrimary: primary,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCoverImage_PrimaryFlagWins(t *testing.T) {
	p := Property{
		Images: []PropertyImage{
			imageFixture(1, "https://img.example/a.jpg", false),
			imageFixture(2, "https://img.example/b.jpg", true),
			imageFixture(3, "https://img.example/c.jpg", false),
		},
	}

	resp := NewPropertyResponse(&p, false)
	require.NotNil(t, resp.CoverImage)
	assert.Equal(t, "https://img.example/b.jpg", *resp.CoverImage)
}

func TestCoverImage_FallsBackToFirstInserted(t *testing.T) {
	p := Property{
		Images: []PropertyImage{
			imageFixture(1, "https://img.example/a.jpg", false),
			imageFixture(2, "https://img.example/b.jpg", false),
		},
	}

	resp := NewPropertyResponse(&p, false)
	require.NotNil(t, resp.CoverImage)
	assert.Equal(t, "https://img.example/a.jpg", *resp.CoverImage)
}

func TestCoverImage_NullWithoutImages(t *testing.T) {
	p := Property{}

	resp := NewPropertyResponse(&p, false)
	assert.Nil(t, resp.CoverImage)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cover_image_url":null`)
}

func TestResponse_NumericNormalization(t *testing.T) {
	p := Property{
		Price:     675000,
		Bathrooms: 2.5,
	}

	resp := NewPropertyResponse(&p, false)
	assert.Equal(t, 675000.0, resp.Price)
	assert.Equal(t, 2.5, resp.Bathrooms)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 675000.0, decoded["price"])
	assert.Equal(t, 2.5, decoded["bathrooms"])
}

func TestResponse_TimestampsAsISOStrings(t *testing.T) {
	created := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	p := Property{CreatedAt: created, UpdatedAt: created}

	resp := NewPropertyResponse(&p, false)
	require.NotNil(t, resp.CreatedAt)
	assert.Equal(t, "2024-06-15T09:30:00Z", *resp.CreatedAt)

	// Absent timestamps serialize as null
	empty := NewPropertyResponse(&Property{}, false)
	assert.Nil(t, empty.CreatedAt)
	assert.Nil(t, empty.UpdatedAt)
}

func TestResponse_ImagesOnlyWhenRequested(t *testing.T) {
	p := Property{
		Images: []PropertyImage{
			imageFixture(1, "https://img.example/a.jpg", true),
			imageFixture(2, "https://img.example/b.jpg", false),
		},
	}

	list := NewPropertyResponse(&p, false)
	assert.Nil(t, list.Images)

	detail := NewPropertyResponse(&p, true)
	require.Len(t, detail.Images, 2)
	assert.Equal(t, "https://img.example/a.jpg", detail.Images[0].URL)
	assert.True(t, detail.Images[0].IsPrimary)
	require.NotNil(t, detail.Images[0].CreatedAt)
}
