package resource_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/resource"
)

type widget struct {
	ID     int
	Secret string
}

type widgetResource struct{}

func (widgetResource) ToArray(w widget) resource.Map {
	return resource.Map{"id": w.ID}
}

func TestResourceRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	resource.New[widget](widgetResource{}, widget{ID: 3, Secret: "x"}).
		WithMeta(resource.Map{"v": 1}).
		Respond(rec, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":3},"meta":{"v":1}}`, rec.Body.String())
}

func TestCollectionRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	resource.Collection[widget](widgetResource{}, []widget{{ID: 1}, {ID: 2}}).Respond(rec)
	assert.JSONEq(t, `{"data":[{"id":1},{"id":2}]}`, rec.Body.String())
}

func TestEmptyCollectionIsArray(t *testing.T) {
	raw, err := json.Marshal(resource.Collection[widget](widgetResource{}, nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
