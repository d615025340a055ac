package catalog

import (
	"encoding/json"
	"errors"
	"slices"
	"sort"
)

// ErrSourceMissing aborts a run: the top-level source (asset root, table file
// or database table) does not exist.
var ErrSourceMissing = errors.New("catalog source missing")

// Item is one published gallery entry.
type Item struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Vertices        string   `json:"vertices"`
	PolyCount       string   `json:"polyCount"`
	MarketplaceLink string   `json:"marketplaceLink"`
	Thumbnail       string   `json:"thumbnail"`
	Images          []string `json:"images"`
	ModelURL        string   `json:"modelUrl,omitempty"`
	Textures        string   `json:"textures,omitempty"`
	Formats         []string `json:"formats,omitempty"`

	// Extra holds pass-through metadata fields, flattened into the JSON object.
	Extra map[string]any `json:"-"`
}

// itemKeys are the JSON keys owned by Item. Pass-through fields never override them.
var itemKeys = []string{
	"id", "title", "category", "description", "vertices", "polyCount",
	"marketplaceLink", "thumbnail", "images", "modelUrl", "textures", "formats",
}

type itemAlias Item

// MarshalJSON writes the fixed fields first, then pass-through fields in key order.
func (i Item) MarshalJSON() ([]byte, error) {
	a := itemAlias(i)
	if a.Images == nil {
		a.Images = []string{}
	}
	out, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(i.Extra))
	for k := range i.Extra {
		if !slices.Contains(itemKeys, k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return out, nil
	}
	sort.Strings(keys)

	out = out[:len(out)-1]
	for _, k := range keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(i.Extra[k])
		if err != nil {
			return nil, err
		}
		out = append(out, ',')
		out = append(out, kb...)
		out = append(out, ':')
		out = append(out, vb...)
	}
	return append(out, '}'), nil
}

// UnmarshalJSON reads the fixed fields and keeps any other key in Extra.
func (i *Item) UnmarshalJSON(data []byte) error {
	var a itemAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if slices.Contains(itemKeys, k) {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if a.Extra == nil {
			a.Extra = make(map[string]any)
		}
		a.Extra[k] = val
	}

	*i = Item(a)
	return nil
}

// Record is a raw, source-agnostic catalog entry produced by a Source.
type Record struct {
	// ID is the item identifier; records with an empty ID are dropped.
	ID string
	// Fields holds display fields keyed by their tabular column name.
	Fields map[string]string
	// Thumbnail and Images are raw references, resolved by the Builder.
	Thumbnail string
	Images    []string
	// Extra holds pass-through metadata.
	Extra map[string]any
	// Origin names where the record came from (folder, row number), for logs.
	Origin string
}

// Field returns the named display field, or "".
func (r Record) Field(key string) string {
	return r.Fields[key]
}

// fieldKeys are the display fields a Record may carry.
var fieldKeys = []string{
	"title", "category", "description", "vertices", "polyCount",
	"marketplaceLink", "modelUrl", "textures", "formats",
}

// ProductRow is one row of the product list, shared by the parquet file
// layout and the database table.
type ProductRow struct {
	ID              string `parquet:"id" gorm:"column:id;primaryKey"`
	Title           string `parquet:"title" gorm:"column:title"`
	Description     string `parquet:"description" gorm:"column:description"`
	Category        string `parquet:"category" gorm:"column:category"`
	Vertices        string `parquet:"vertices" gorm:"column:vertices"`
	PolyCount       string `parquet:"polyCount" gorm:"column:poly_count"`
	MarketplaceLink string `parquet:"marketplaceLink" gorm:"column:marketplace_link"`
	Thumbnail       string `parquet:"thumbnail" gorm:"column:thumbnail"`
	Image1          string `parquet:"image1" gorm:"column:image1"`
	Image2          string `parquet:"image2" gorm:"column:image2"`
	Image3          string `parquet:"image3" gorm:"column:image3"`
	Image4          string `parquet:"image4" gorm:"column:image4"`
	Image5          string `parquet:"image5" gorm:"column:image5"`
}

// productImageColumns is the fixed number of image columns of ProductRow.
const productImageColumns = 5

// Images returns the image columns in order.
func (p ProductRow) Images() []string {
	return []string{p.Image1, p.Image2, p.Image3, p.Image4, p.Image5}
}

// Record converts the row into a Record.
func (p ProductRow) Record(origin string) Record {
	return Record{
		ID: p.ID,
		Fields: map[string]string{
			"title":           p.Title,
			"description":     p.Description,
			"category":        p.Category,
			"vertices":        p.Vertices,
			"polyCount":       p.PolyCount,
			"marketplaceLink": p.MarketplaceLink,
		},
		Thumbnail: p.Thumbnail,
		Images:    p.Images(),
		Origin:    origin,
	}
}

// Row returns the row in tabular column order, padded to imageColumns images.
func (p ProductRow) Row(imageColumns int) []string {
	row := []string{p.ID, p.Title, p.Description, p.Category, p.Vertices, p.PolyCount, p.MarketplaceLink, p.Thumbnail}
	images := p.Images()
	for i := 0; i < imageColumns; i++ {
		if i < len(images) {
			row = append(row, images[i])
		} else {
			row = append(row, "")
		}
	}
	return row
}

// SetImages fills the image columns from images; entries beyond the last column are ignored.
func (p *ProductRow) SetImages(images []string) {
	cols := []*string{&p.Image1, &p.Image2, &p.Image3, &p.Image4, &p.Image5}
	for i, col := range cols {
		*col = ""
		if i < len(images) {
			*col = images[i]
		}
	}
}
