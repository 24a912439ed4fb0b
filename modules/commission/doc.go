// Package commission implements the sales commission API.
//
// A salesperson submits a name and item counts for locks ($45 each), stocks
// ($30 each), and barrels ($25 each). Input is validated with the salesform
// rules: the name must be non-empty English or Thai letters and spaces, each
// count a whole number within its range (locks 1-70, stocks 1-80, barrels
// 1-90). Valid submissions earn tiered commission: 10% of the first $1,000
// of sales, 15% of the next $800, and 20% above $1,800.
//
// POST /calculate answers {"success": true, "data": {...}} with the computed
// sales and commission, or 422 {"success": false, "errors": [...]} with one
// message per failed field. GET /history lists stored calculations, newest
// first. Validation messages localize to the request locale from the
// embedded catalogs (English and Thai).
package commission
