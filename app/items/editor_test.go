package items

import (
	"errors"
	"testing"

	"github.com/mytheresa/inventory-system/app/validation"
	"github.com/mytheresa/inventory-system/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Store ---

type MockCatalog struct {
	Items  map[int]*models.Item
	NextID int
	Err    error

	added    []*models.Item
	replaced []*models.Item
	removed  []*models.Item
}

func newMockCatalog(items ...*models.Item) *MockCatalog {
	m := &MockCatalog{Items: map[int]*models.Item{}, NextID: 38}
	for _, it := range items {
		m.Items[it.ID] = it
	}
	return m
}

func (m *MockCatalog) NextItemID() int {
	id := m.NextID
	m.NextID++
	return id
}

func (m *MockCatalog) AddItem(item *models.Item) error {
	if m.Err != nil {
		return m.Err
	}
	m.added = append(m.added, item)
	m.Items[item.ID] = item
	return nil
}

func (m *MockCatalog) ReplaceItem(item *models.Item) error {
	if m.Err != nil {
		return m.Err
	}
	m.replaced = append(m.replaced, item)
	m.Items[item.ID] = item
	return nil
}

func (m *MockCatalog) RemoveItem(item *models.Item) error {
	if m.Err != nil {
		return m.Err
	}
	m.removed = append(m.removed, item)
	delete(m.Items, item.ID)
	return nil
}

func (m *MockCatalog) ItemByID(id int) (*models.Item, error) {
	it, ok := m.Items[id]
	if !ok {
		return nil, models.ErrItemNotFound
	}
	return it, nil
}

// --- Mock Confirmer ---

type MockConfirmer struct {
	Answer  bool
	Prompts []string
}

func (m *MockConfirmer) Confirm(prompt string) bool {
	m.Prompts = append(m.Prompts, prompt)
	return m.Answer
}

// --- Mock Observer ---

type MockObserver struct {
	Signals []string
}

func (m *MockObserver) ObserveRejection(collection string, signal string) {
	m.Signals = append(m.Signals, collection+"/"+signal)
}

// --- Helpers ---

func sourcedDraft(name string) *Draft {
	d := NewDraft()
	d.Form = Form{
		Name:         name,
		Price:        "$1,234.5",
		Stock:        "10",
		Min:          "5",
		Max:          "20",
		Kind:         models.SourceSourced,
		SupplierName: " Metal Machining Co. ",
	}
	return d
}

// --- Tests ---

func TestSave(t *testing.T) {
	stored := models.NewItem(8, "sprocket", decimal.RequireFromString("6.46"), 80, 60, 300, models.Manufactured{MachineID: 365})

	testCases := []struct {
		name        string
		draft       func() *Draft
		expectedErr error
		check       func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item)
	}{
		{
			name: "New item gets a generated id",
			draft: func() *Draft { return sourcedDraft("nut") },
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				require.Len(t, m.added, 1)
				assert.Equal(t, 38, item.ID)
				assert.Equal(t, "nut", item.Name)
				assert.True(t, decimal.RequireFromString("1234.5").Equal(item.Price))
				name, ok := item.SupplierName()
				assert.True(t, ok)
				assert.Equal(t, "Metal Machining Co.", name)
			},
		},
		{
			name: "Modify keeps the id and switches variant",
			draft: func() *Draft {
				d := sourcedDraft("sprocket")
				d.ID = 8
				return d
			},
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				require.Len(t, m.replaced, 1)
				assert.Empty(t, m.added)
				assert.Equal(t, 8, item.ID)
				assert.Equal(t, models.SourceSourced, m.Items[8].Kind())
			},
		},
		{
			name: "Manufactured form",
			draft: func() *Draft {
				d := sourcedDraft("gear")
				d.Form.Kind = models.SourceManufactured
				d.Form.MachineID = "368"
				return d
			},
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				id, ok := item.MachineID()
				assert.True(t, ok)
				assert.Equal(t, 368, id)
			},
		},
		{
			name: "Max below min is rejected",
			draft: func() *Draft {
				d := sourcedDraft("nut")
				d.Form.Min, d.Form.Max = "30", "20"
				return d
			},
			expectedErr: validation.ErrMaxBelowMin,
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				assert.Empty(t, m.added)
				assert.Equal(t, 38, m.NextID, "a rejected save must not use up an id")
				assert.Equal(t, []string{"items/max_below_min"}, obs.Signals)
			},
		},
		{
			name: "Stock out of range is rejected",
			draft: func() *Draft {
				d := sourcedDraft("nut")
				d.Form.Stock = "21"
				return d
			},
			expectedErr: validation.ErrStockOutOfRange,
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				assert.Empty(t, m.added)
				assert.Equal(t, []string{"items/stock_out_of_range"}, obs.Signals)
			},
		},
		{
			name: "Malformed stock",
			draft: func() *Draft {
				d := sourcedDraft("nut")
				d.Form.Stock = ""
				return d
			},
			expectedErr: validation.ErrMalformedInput,
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				assert.Empty(t, obs.Signals)
			},
		},
		{
			name: "Modify of an unknown id",
			draft: func() *Draft {
				d := sourcedDraft("ghost")
				d.ID = 999
				return d
			},
			expectedErr: models.ErrItemNotFound,
			check: func(t *testing.T, m *MockCatalog, obs *MockObserver, item *models.Item) {
				assert.Empty(t, m.replaced)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			m := newMockCatalog(stored)
			obs := &MockObserver{}
			e := NewEditor(m, &MockConfirmer{}, WithObserver(obs))

			// Act
			item, err := e.Save(tc.draft())

			// Assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
			}
			tc.check(t, m, obs, item)
		})
	}
}

func TestSaveStoreError(t *testing.T) {
	m := newMockCatalog()
	m.Err = errors.New("boom")
	e := NewEditor(m, &MockConfirmer{})

	_, err := e.Save(sourcedDraft("nut"))

	assert.EqualError(t, err, "boom")
}

func TestDelete(t *testing.T) {
	item := models.NewItem(1, "nut", decimal.RequireFromString("0.10"), 380, 100, 500, nil)

	testCases := []struct {
		name            string
		item            *models.Item
		answer          bool
		expectedErr     error
		expectedRemoved int
		expectedPrompts []string
	}{
		{name: "Confirmed", item: item, answer: true, expectedRemoved: 1, expectedPrompts: []string{`Delete part: "nut" ?`}},
		{name: "Declined", item: item, answer: false, expectedErr: ErrCancelled, expectedPrompts: []string{`Delete part: "nut" ?`}},
		{name: "Nothing selected", item: nil, answer: true, expectedErr: ErrNoSelection},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMockCatalog(item)
			c := &MockConfirmer{Answer: tc.answer}
			e := NewEditor(m, c)

			err := e.Delete(tc.item)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Len(t, m.removed, tc.expectedRemoved)
			assert.Equal(t, tc.expectedPrompts, c.Prompts)
		})
	}
}

func TestDraftDirty(t *testing.T) {
	d := DraftFor(models.NewItem(8, "sprocket", decimal.RequireFromString("6.46"), 80, 60, 300, models.Manufactured{MachineID: 365}))
	assert.Equal(t, 8, d.ID)
	assert.Equal(t, "6.46", d.Form.Price)
	assert.Equal(t, "365", d.Form.MachineID)
	assert.False(t, d.Dirty())

	d.Form.Stock = "81"
	assert.True(t, d.Dirty())

	d.Form.Stock = "80"
	assert.False(t, d.Dirty())
}

func TestSaveClearsDirty(t *testing.T) {
	m := newMockCatalog()
	e := NewEditor(m, &MockConfirmer{})
	d := sourcedDraft("nut")
	require.True(t, d.Dirty())

	item, err := e.Save(d)

	require.NoError(t, err)
	assert.Equal(t, item.ID, d.ID)
	assert.False(t, d.Dirty())
}

func TestSaveRejectedStaysDirty(t *testing.T) {
	m := newMockCatalog()
	e := NewEditor(m, &MockConfirmer{})
	d := sourcedDraft("nut")
	d.Form.Stock = "21"

	_, err := e.Save(d)

	assert.ErrorIs(t, err, validation.ErrStockOutOfRange)
	assert.Zero(t, d.ID)
	assert.True(t, d.Dirty())
}

func TestCancel(t *testing.T) {
	c := &MockConfirmer{Answer: false}
	e := NewEditor(newMockCatalog(), c)
	d := DraftFor(models.NewItem(8, "sprocket", decimal.RequireFromString("6.46"), 80, 60, 300, models.Manufactured{MachineID: 365}))

	assert.NoError(t, e.Cancel(d))
	assert.Empty(t, c.Prompts)

	d.Form.Stock = "81"
	assert.ErrorIs(t, e.Cancel(d), ErrCancelled)

	c.Answer = true
	assert.NoError(t, e.Cancel(d))
	assert.Equal(t, []string{"Do you wish to cancel?", "Do you wish to cancel?"}, c.Prompts)
}

func TestEditorAgainstCatalog(t *testing.T) {
	cat := models.NewCatalog(models.NewSequenceGenerator(1, 1))
	e := NewEditor(cat, &MockConfirmer{Answer: true})

	first, err := e.Save(sourcedDraft("nut"))
	require.NoError(t, err)
	second, err := e.Save(sourcedDraft("bolt"))
	require.NoError(t, err)
	assert.Less(t, first.ID, second.ID)

	d := DraftFor(first)
	d.Form.Kind = models.SourceManufactured
	d.Form.MachineID = "365"
	modified, err := e.Save(d)
	require.NoError(t, err)

	pos, ok := cat.ItemPosition(first.ID)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
	stored, err := cat.ItemAt(0)
	require.NoError(t, err)
	assert.Same(t, modified, stored)
	assert.Equal(t, models.SourceManufactured, stored.Kind())

	require.NoError(t, e.Delete(stored))
	assert.Equal(t, 1, cat.AllItems().Len())
}
