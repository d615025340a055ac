// Package catalog builds and serves the gallery index.
//
// A Source (folder metadata, product table or database table) yields raw records.
// The Builder resolves every thumbnail and image reference through the path
// resolver, applies defaults and drops records without an id or with a repeated
// one. Emit publishes the resulting list as a single JSON array.
//
// # Source Modes
//
//   - folder: one item per subfolder of the asset root with an info.json,
//     info.yaml or info.toml file. All images of the folder are listed; the
//     thumbnail is thumbnail.* or else the first image.
//   - table: a delimited text or .parquet product list with the columns
//     id,title,description,category,vertices,polyCount,marketplaceLink,thumbnail,image1..image5.
//     A thumbnail missing from the images is prepended to them.
//   - db: the same columns read from a database table.
//
// A missing asset root, table file or table aborts the run with ErrSourceMissing
// and nothing is written. Everything else degrades to a logged warning.
package catalog
