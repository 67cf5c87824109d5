package report

import (
	"bytes"
	"testing"

	"github.com/mytheresa/inventory-system/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testCatalog() (models.ItemList, models.ProductList) {
	nut := models.NewItem(1, "nut", decimal.RequireFromString("0.10"), 380, 100, 500, models.Sourced{SupplierName: "Metal Machining Co."})
	sprocket := models.NewItem(8, "sprocket", decimal.RequireFromString("6.46"), 80, 60, 300, models.Manufactured{MachineID: 365})

	bike := models.NewProduct(100, "road bike", decimal.NewFromInt(780), 30, 18, 40)
	bike.AddComponent(sprocket)
	bike.AddComponent(sprocket)
	bike.AddComponent(nut)

	return models.ItemList{nut, sprocket}, models.ProductList{bike}
}

func TestWrite(t *testing.T) {
	// Arrange
	items, products := testCatalog()
	var buf bytes.Buffer

	// Act
	err := Write(&buf, items, products, Sheets{})

	// Assert
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{DefaultItemsSheet, DefaultProductsSheet}, f.GetSheetList())

	rows, err := f.GetRows(DefaultItemsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, []string{"1", "nut", "0.1", "380", "100", "500", "sourced", "", "Metal Machining Co."}, rows[1])
	require.GreaterOrEqual(t, len(rows[2]), 8)
	assert.Equal(t, []string{"8", "sprocket", "6.46", "80", "60", "300", "manufactured", "365"}, rows[2][:8])

	rows, err = f.GetRows(DefaultProductsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"100", "road bike", "780", "30", "18", "40", "3", "13.02"}, rows[1])
}

func TestWriteCustomSheets(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, nil, nil, Sheets{Items: "Parts", Products: "Bikes"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"Parts", "Bikes"}, f.GetSheetList())
}

func TestWriteRejectsSameSheetNames(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, nil, nil, Sheets{Items: "Stock", Products: "Stock"})

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
