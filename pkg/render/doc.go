// Package render maps a form snapshot onto the structured Document the
// templates consume and hosts the renderer registry.
//
// Projection rules:
//   - empty dates print as ten underscores, filled dates as day/month/year;
//   - empty identification fields print as underscore placeholders (30 for the
//     employee name, 20 for the rest) so the signed paper keeps its layout;
//   - equipment table cells are plain text and stay empty when blank, except
//     the delivery date which follows the date rule.
package render
