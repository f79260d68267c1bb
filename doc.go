// Package cart provides the types and functions behind the `cart` command-line
// tool: a shopping-cart ledger kept as a flat, append-only text file.
//
// The core functionalities include:
//   - Ledger Store: decoding and appending `sku;description;quantity;price;currency`
//     records, one per line.
//   - Entry Normalization: trimming and validating raw records, and converting
//     prices into the reporting currency (EUR) using fixed rates.
//   - FIFO Reconciliation: matching removals against the earliest added lots of
//     the same SKU to obtain the remaining, unconsumed lots.
//   - Totals: summing the value of the remaining lots across all SKUs.
//
// A Cart is the session object tying these together. It owns the in-memory
// ledger and the store it was loaded from.
package cart
