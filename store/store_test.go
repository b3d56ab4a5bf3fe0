package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardhaven-backend/models"
)

// recordingNotifier captures every event the store emits. The store calls it
// under its write lock, so the recorded sequence matches mutation order.
type recordingNotifier struct {
	kinds    []string
	payloads []models.Product
	deleted  []string
}

func (r *recordingNotifier) ProductAdded(p models.Product) {
	r.kinds = append(r.kinds, "product_added")
	r.payloads = append(r.payloads, p)
}

func (r *recordingNotifier) ProductUpdated(p models.Product) {
	r.kinds = append(r.kinds, "product_updated")
	r.payloads = append(r.payloads, p)
}

func (r *recordingNotifier) ProductDeleted(id string) {
	r.kinds = append(r.kinds, "product_deleted")
	r.deleted = append(r.deleted, id)
}

func TestNewSeedsCatalogNewestFirst(t *testing.T) {
	s := New(nil)

	products := s.ListProducts()
	require.Len(t, products, 4)
	for i := 1; i < len(products); i++ {
		assert.False(t, products[i].CreatedAt.After(products[i-1].CreatedAt),
			"products must be ordered newest first")
	}
}

func TestCreateProductThenGet(t *testing.T) {
	s := New(nil)

	created := s.CreateProduct(models.ProductInput{
		Title:       "Test Product",
		Description: "A product used in tests",
		Price:       "$10.00",
		Image:       "https://example.com/p.png",
	})
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	// Stable under repeated reads.
	again, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, got, again)
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	s := New(nil)

	created := s.CreateProduct(models.ProductInput{
		Title:       "X",
		Description: "Y",
	})

	assert.Equal(t, models.DefaultPrice, created.Price)
	assert.Equal(t, models.DefaultImage, created.Image)
	assert.Equal(t, []string{}, created.Tags)
	assert.Equal(t, float64(models.DefaultRating), created.Rating)
	assert.Equal(t, 0, created.Reviews)
	assert.False(t, created.Featured)
	assert.Equal(t, models.DefaultType, created.Type)
	assert.Equal(t, models.DefaultCategory, created.Category)
	assert.Equal(t, models.DefaultJoinLink, created.JoinLink)
}

func TestCreateProductKeepsSuppliedValues(t *testing.T) {
	s := New(nil)

	rating := 0.5
	reviews := 12
	featured := true
	created := s.CreateProduct(models.ProductInput{
		Title:       "X",
		Description: "Y",
		Price:       "$1",
		Image:       "https://example.com/x.png",
		Tags:        []string{"a", "b", "a"},
		Rating:      &rating,
		Reviews:     &reviews,
		Featured:    &featured,
		Type:        "course",
		Category:    "Learning",
		JoinLink:    "https://example.com/join",
	})

	assert.Equal(t, "$1", created.Price)
	assert.Equal(t, []string{"a", "b", "a"}, created.Tags)
	assert.Equal(t, 0.5, created.Rating)
	assert.Equal(t, 12, created.Reviews)
	assert.True(t, created.Featured)
	assert.Equal(t, "course", created.Type)
	assert.Equal(t, "Learning", created.Category)
	assert.Equal(t, "https://example.com/join", created.JoinLink)
}

func TestListProductsNewestFirstAfterCreates(t *testing.T) {
	s := New(nil)

	a := s.CreateProduct(models.ProductInput{Title: "A", Description: "first"})
	b := s.CreateProduct(models.ProductInput{Title: "B", Description: "second"})

	products := s.ListProducts()
	require.GreaterOrEqual(t, len(products), 2)
	assert.Equal(t, b.ID, products[0].ID)
	assert.Equal(t, a.ID, products[1].ID)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	s := New(nil)
	created := s.CreateProduct(models.ProductInput{Title: "A", Description: "desc", Price: "$5"})

	title := "Z"
	updated, ok := s.UpdateProduct(created.ID, models.ProductUpdate{Title: &title})
	require.True(t, ok)

	assert.Equal(t, "Z", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Z", got.Title)
}

func TestUpdateProductEmptyPartialIsNoop(t *testing.T) {
	s := New(nil)
	created := s.CreateProduct(models.ProductInput{Title: "A", Description: "desc"})

	updated, ok := s.UpdateProduct(created.ID, models.ProductUpdate{})
	require.True(t, ok)
	assert.Equal(t, created, updated)
}

func TestUpdateProductUnknownID(t *testing.T) {
	s := New(nil)

	_, ok := s.UpdateProduct("nope", models.ProductUpdate{})
	assert.False(t, ok)
}

func TestDeleteProduct(t *testing.T) {
	s := New(nil)
	created := s.CreateProduct(models.ProductInput{Title: "A", Description: "desc"})

	assert.True(t, s.DeleteProduct(created.ID))

	_, ok := s.GetProduct(created.ID)
	assert.False(t, ok)

	// Second delete of the same id reports nothing removed.
	assert.False(t, s.DeleteProduct(created.ID))
}

func TestAdminCredentialLifecycle(t *testing.T) {
	s := New(nil)

	_, ok := s.GetAdmin("admin")
	assert.False(t, ok, "no credential exists until provisioned")

	s.CreateAdmin("admin", "admin123")
	admin, ok := s.GetAdmin("admin")
	require.True(t, ok)
	assert.Equal(t, "admin123", admin.Password)

	// Reset overwrites in place; there is never more than one credential.
	s.SetAdminPassword("admin", "newpass")
	admin, ok = s.GetAdmin("admin")
	require.True(t, ok)
	assert.Equal(t, "newpass", admin.Password)

	// Reset also provisions when absent.
	s2 := New(nil)
	s2.SetAdminPassword("admin", "fresh")
	admin, ok = s2.GetAdmin("admin")
	require.True(t, ok)
	assert.Equal(t, "fresh", admin.Password)
}

func TestReturnedProductsAreCopies(t *testing.T) {
	s := New(nil)
	created := s.CreateProduct(models.ProductInput{Title: "A", Description: "desc", Tags: []string{"original"}})

	// Mutating a listed product must not touch the stored record.
	list := s.ListProducts()
	list[0].Title = "mutated"
	list[0].Tags[0] = "mutated"

	got, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, []string{"original"}, got.Tags)

	// Same for a product returned by a point lookup.
	got.Tags[0] = "mutated-from-outside"
	again, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"original"}, again.Tags)

	// And for the values returned by create and update.
	created.Tags[0] = "mutated"
	tags := []string{"replaced"}
	updated, ok := s.UpdateProduct(created.ID, models.ProductUpdate{Tags: &tags})
	require.True(t, ok)
	tags[0] = "mutated"
	updated.Tags[0] = "also-mutated"

	final, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"replaced"}, final.Tags)
}

func TestNotifierReceivesOneEventPerMutation(t *testing.T) {
	rec := &recordingNotifier{}
	s := New(rec)

	created := s.CreateProduct(models.ProductInput{Title: "A", Description: "desc"})
	title := "Z"
	updated, ok := s.UpdateProduct(created.ID, models.ProductUpdate{Title: &title})
	require.True(t, ok)
	require.True(t, s.DeleteProduct(created.ID))

	// Failed mutations emit nothing.
	_, ok = s.UpdateProduct("nope", models.ProductUpdate{Title: &title})
	require.False(t, ok)
	require.False(t, s.DeleteProduct("nope"))

	assert.Equal(t, []string{"product_added", "product_updated", "product_deleted"}, rec.kinds)
	assert.Equal(t, created, rec.payloads[0])
	assert.Equal(t, updated, rec.payloads[1])
	assert.Equal(t, []string{created.ID}, rec.deleted)
}

func TestNotifierOrderTracksStoreSerialization(t *testing.T) {
	rec := &recordingNotifier{}
	s := New(rec)
	created := s.CreateProduct(models.ProductInput{Title: "A", Description: "desc"})

	const writers = 16
	const updatesPerWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < updatesPerWriter; i++ {
				title := fmt.Sprintf("w%d-%d", w, i)
				_, ok := s.UpdateProduct(created.ID, models.ProductUpdate{Title: &title})
				assert.True(t, ok)
			}
		}(w)
	}
	wg.Wait()

	// One event per successful mutation, and the last event's payload is
	// the store's final state: events were enqueued under the write lock,
	// in the exact order the mutations were applied.
	require.Len(t, rec.kinds, 1+writers*updatesPerWriter)
	final, ok := s.GetProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, final, rec.payloads[len(rec.payloads)-1])
}
