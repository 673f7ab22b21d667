// Package form owns the single editable document session: the employee
// identification block and the ordered list of equipment issuance rows.
//
// Every mutation is total. Unknown row ids and rejected removals are reported
// through boolean results instead of errors, and the row list never becomes
// empty. Renderers receive a detached model.Snapshot and never see the live
// state. A Form is meant for one interactive actor and is not safe for
// concurrent use.
package form
