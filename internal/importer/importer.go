// Package importer reads items and containers from CSV, matching the
// fixed header schemas the adapters exchange with the rest of the
// system. Malformed rows are collected as errors rather than aborting
// the whole import.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// expiryLayout is the date format used by the items CSV's expiry_date
// column.
const expiryLayout = "2006-01-02"

// naSentinel marks an absent optional value: "never" for expiry,
// "unlimited" for usage_limit.
const naSentinel = "N/A"

// ItemsResult holds the outcome of importing an items CSV.
type ItemsResult struct {
	Items  []stowage.Item
	Errors []string
}

// itemsHeader lists the required columns of the items CSV (matched by
// name, in any order):
// item_id,name,width_cm,depth_cm,height_cm,mass_kg,priority,expiry_date,usage_limit,preferred_zone
var itemsHeader = []string{
	"item_id", "name", "width_cm", "depth_cm", "height_cm",
	"mass_kg", "priority", "expiry_date", "usage_limit", "preferred_zone",
}

// ImportItems parses CSV data into Items. Header names are matched
// case-insensitively and may appear in any order; a missing required
// column aborts the import with a single error.
func ImportItems(data []byte) ItemsResult {
	records, header, err := readCSV(data)
	if err != nil {
		return ItemsResult{Errors: []string{err.Error()}}
	}
	if len(records) == 0 {
		return ItemsResult{}
	}

	idx, missing := columnIndex(header, itemsHeader)
	if len(missing) > 0 {
		return ItemsResult{Errors: []string{fmt.Sprintf("items CSV missing required columns: %s", strings.Join(missing, ", "))}}
	}

	var result ItemsResult
	for i, row := range records {
		lineNum := i + 2 // account for the header line
		it, err := parseItemRow(row, idx)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", lineNum, err))
			continue
		}
		result.Items = append(result.Items, it)
	}
	return result
}

// cellAt safely retrieves row[i], returning "" if i is out of range —
// a short row (fewer trailing columns than the header) is common in
// hand-edited CSVs.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseItemRow(row []string, idx map[string]int) (stowage.Item, error) {
	get := func(col string) string { return cellAt(row, idx[col]) }

	width, err := strconv.ParseFloat(get("width_cm"), 64)
	if err != nil {
		return stowage.Item{}, fmt.Errorf("invalid width_cm %q", get("width_cm"))
	}
	depth, err := strconv.ParseFloat(get("depth_cm"), 64)
	if err != nil {
		return stowage.Item{}, fmt.Errorf("invalid depth_cm %q", get("depth_cm"))
	}
	height, err := strconv.ParseFloat(get("height_cm"), 64)
	if err != nil {
		return stowage.Item{}, fmt.Errorf("invalid height_cm %q", get("height_cm"))
	}
	mass, err := strconv.ParseFloat(get("mass_kg"), 64)
	if err != nil {
		return stowage.Item{}, fmt.Errorf("invalid mass_kg %q", get("mass_kg"))
	}
	priority, err := strconv.Atoi(get("priority"))
	if err != nil {
		return stowage.Item{}, fmt.Errorf("invalid priority %q", get("priority"))
	}

	var expiry *time.Time
	if raw := get("expiry_date"); raw != naSentinel {
		t, err := time.Parse(expiryLayout, raw)
		if err != nil {
			return stowage.Item{}, fmt.Errorf("invalid expiry_date %q", raw)
		}
		expiry = &t
	}

	var usageLimit *int
	if raw := get("usage_limit"); raw != naSentinel {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return stowage.Item{}, fmt.Errorf("invalid usage_limit %q", raw)
		}
		usageLimit = &n
	}

	return stowage.Item{
		ID:            get("item_id"),
		Name:          get("name"),
		Width:         width,
		Depth:         depth,
		Height:        height,
		Mass:          mass,
		Priority:      priority,
		Expiry:        expiry,
		UsageLimit:    usageLimit,
		PreferredZone: get("preferred_zone"),
	}, nil
}

// ContainersResult holds the outcome of importing a containers CSV.
type ContainersResult struct {
	Containers []*stowage.Container
	Errors     []string
}

// containersHeader lists the required columns of the containers CSV
// (matched by name, in any order):
// zone,container_id,width_cm,depth_cm,height_cm
var containersHeader = []string{"zone", "container_id", "width_cm", "depth_cm", "height_cm"}

// ImportContainers parses CSV data into Containers.
func ImportContainers(data []byte) ContainersResult {
	records, header, err := readCSV(data)
	if err != nil {
		return ContainersResult{Errors: []string{err.Error()}}
	}
	if len(records) == 0 {
		return ContainersResult{}
	}

	idx, missing := columnIndex(header, containersHeader)
	if len(missing) > 0 {
		return ContainersResult{Errors: []string{fmt.Sprintf("containers CSV missing required columns: %s", strings.Join(missing, ", "))}}
	}

	var result ContainersResult
	for i, row := range records {
		lineNum := i + 2
		get := func(col string) string { return cellAt(row, idx[col]) }

		width, err := strconv.ParseFloat(get("width_cm"), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid width_cm %q", lineNum, get("width_cm")))
			continue
		}
		depth, err := strconv.ParseFloat(get("depth_cm"), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid depth_cm %q", lineNum, get("depth_cm")))
			continue
		}
		height, err := strconv.ParseFloat(get("height_cm"), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid height_cm %q", lineNum, get("height_cm")))
			continue
		}

		result.Containers = append(result.Containers,
			stowage.NewContainer(get("container_id"), get("zone"), width, depth, height))
	}
	return result
}

// readCSV parses raw CSV bytes into a header row and the remaining data
// rows.
func readCSV(data []byte) (records [][]string, header []string, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[1:], all[0], nil
}

// columnIndex maps each required column name to its index in header,
// matching case-insensitively. Returns the names that could not be
// found.
func columnIndex(header []string, required []string) (map[string]int, []string) {
	lookup := make(map[string]int, len(header))
	for i, h := range header {
		lookup[strings.ToLower(strings.TrimSpace(h))] = i
	}

	idx := make(map[string]int, len(required))
	var missing []string
	for _, col := range required {
		if i, ok := lookup[col]; ok {
			idx[col] = i
		} else {
			missing = append(missing, col)
		}
	}
	return idx, missing
}
