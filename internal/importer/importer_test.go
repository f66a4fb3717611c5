package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsCSV = `item_id,name,width_cm,depth_cm,height_cm,mass_kg,priority,expiry_date,usage_limit,preferred_zone
000001,Research_Samples,50,50,50,2.4,84,N/A,2304,Storage_Bay
000002,Pressure_Regulator,48.1,33.2,43.1,34.41,16,2024-01-01,1075,Airlock
`

const containersCSV = `zone,container_id,width_cm,depth_cm,height_cm
Command_Center,CC02,100.0,170.0,200.0
Storage_Bay,SB01,200.0,200.0,200.0
`

func TestImportItemsParsesSentinels(t *testing.T) {
	result := ImportItems([]byte(itemsCSV))

	require.Empty(t, result.Errors)
	require.Len(t, result.Items, 2)

	a := result.Items[0]
	assert.Equal(t, "000001", a.ID)
	assert.Nil(t, a.Expiry)
	require.NotNil(t, a.UsageLimit)
	assert.Equal(t, 2304, *a.UsageLimit)

	b := result.Items[1]
	require.NotNil(t, b.Expiry)
	assert.Equal(t, 2024, b.Expiry.Year())
}

func TestImportItemsInvalidRowReportsError(t *testing.T) {
	bad := `item_id,name,width_cm,depth_cm,height_cm,mass_kg,priority,expiry_date,usage_limit,preferred_zone
000001,Bad,notanumber,50,50,2.4,84,N/A,2304,Storage_Bay
`
	result := ImportItems([]byte(bad))
	require.Len(t, result.Errors, 1)
	assert.Empty(t, result.Items)
}

func TestImportItemsMissingColumn(t *testing.T) {
	result := ImportItems([]byte("item_id,name\n1,a\n"))
	require.Len(t, result.Errors, 1)
}

func TestImportContainers(t *testing.T) {
	result := ImportContainers([]byte(containersCSV))

	require.Empty(t, result.Errors)
	require.Len(t, result.Containers, 2)
	assert.Equal(t, "CC02", result.Containers[0].ID)
	assert.Equal(t, "Command_Center", result.Containers[0].Zone)
	assert.Equal(t, 100.0, result.Containers[0].Width)
}

func TestImportItemsEmptyInput(t *testing.T) {
	result := ImportItems([]byte(""))
	assert.Empty(t, result.Items)
	assert.Empty(t, result.Errors)
}
