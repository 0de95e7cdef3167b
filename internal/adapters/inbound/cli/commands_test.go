package cli_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stockroom/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDataFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "inventory_data.json")
}

func TestAddCmd(t *testing.T) {
	dataFile := tempDataFile(t)

	out, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Apple", "--sku", "SKU001", "--price", "0.99", "--qty", "100", "--category", "Fruit")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 'Apple' added.")

	out, err = runCmd(t, "list", "--data", dataFile)
	require.NoError(t, err)
	assert.Contains(t, out, "SKU001: Apple - $0.99 (100 in stock)")
}

func TestAddCmd_DefaultCategory(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Widget", "--sku", "SKU042", "--price", "5", "--qty", "10")
	require.NoError(t, err)

	out, err := runCmd(t, "list", "--data", dataFile, "--json")
	require.NoError(t, err)

	var products []domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 1)
	assert.Equal(t, domain.DefaultCategory, products[0].Category)
}

func TestAddCmd_DuplicateSKU(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Apple", "--sku", "SKU001", "--price", "0.99", "--qty", "100")
	require.NoError(t, err)

	_, err = runCmd(t, "add", "--data", dataFile,
		"--name", "Green Apple", "--sku", "SKU001", "--price", "1.29", "--qty", "40")
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestRemoveCmd(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Apple", "--sku", "SKU001", "--price", "0.99", "--qty", "100")
	require.NoError(t, err)

	out, err := runCmd(t, "remove", "--data", dataFile, "SKU001")
	require.NoError(t, err)
	assert.Contains(t, out, "Product 'Apple' removed.")

	out, err = runCmd(t, "list", "--data", dataFile)
	require.NoError(t, err)
	assert.Contains(t, out, domain.EmptyInventoryMessage)
	assert.NotContains(t, out, "SKU001")
}

func TestRemoveCmd_Unknown(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "remove", "--data", dataFile, "SKU999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSellCmd(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Apple", "--sku", "SKU001", "--price", "0.99", "--qty", "100")
	require.NoError(t, err)

	out, err := runCmd(t, "sell", "--data", dataFile, "SKU001", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Sold 30 of Apple (70 left).")

	out, err = runCmd(t, "list", "--data", dataFile)
	require.NoError(t, err)
	assert.Contains(t, out, "SKU001: Apple - $0.99 (70 in stock)")
}

func TestSellCmd_InsufficientStock(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Apple", "--sku", "SKU001", "--price", "0.99", "--qty", "70")
	require.NoError(t, err)

	_, err = runCmd(t, "sell", "--data", dataFile, "SKU001", "71")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The failed sale must not change persisted stock.
	out, err := runCmd(t, "list", "--data", dataFile)
	require.NoError(t, err)
	assert.Contains(t, out, "(70 in stock)")
}

func TestSellCmd_NotANumber(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "sell", "--data", dataFile, "SKU001", "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestSalesCmd_EmptyOutsideShell(t *testing.T) {
	dataFile := tempDataFile(t)

	out, err := runCmd(t, "sales", "--data", dataFile)
	require.NoError(t, err)
	assert.Contains(t, out, domain.EmptySalesMessage)
}

func TestListCmd_JSON(t *testing.T) {
	dataFile := tempDataFile(t)

	_, err := runCmd(t, "add", "--data", dataFile,
		"--name", "Apple", "--sku", "SKU001", "--price", "0.99", "--qty", "100", "--category", "Fruit")
	require.NoError(t, err)

	out, err := runCmd(t, "list", "--data", dataFile, "--json")
	require.NoError(t, err)

	var products []domain.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "SKU001", products[0].SKU)
	assert.Equal(t, 100, products[0].Quantity)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stockroom")
}
