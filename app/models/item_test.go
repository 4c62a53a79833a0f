package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/app/models"
	"github.com/shashiranjanraj/stockroom/pkg/validate"
)

func TestItemValidate(t *testing.T) {
	ok := models.Item{ProductID: 1, Size: "L", Color: "red", Status: models.StatusIn}
	assert.NoError(t, ok.Validate())

	verr, isVal := validate.As(models.Item{}.Validate())
	require.True(t, isVal)
	assert.Equal(t, "Size can't be blank, Color can't be blank, Status can't be blank, Product must exist", verr.Error())
}

func TestItemUnknownStatusIsAccepted(t *testing.T) {
	it := models.Item{ProductID: 1, Size: "L", Color: "red", Status: "damaged"}
	assert.NoError(t, it.Validate())
	assert.False(t, it.IsSold())
}
