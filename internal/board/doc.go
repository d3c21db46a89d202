// Package board holds the kanban board state model and its mutation engine.
//
// A Board is an ordered list of columns; the order is the left-to-right order
// on screen and is preserved by every operation. Each Column holds an ordered
// list of tasks. Task and column ids are unique across the board.
//
// # Mutations
//
// Store exposes the mutations as pure functions: each takes the current board
// and returns a new one, leaving the input untouched. A rejected mutation
// returns the input board together with an error:
//
//   - *ValidationError when a required title or content is blank
//   - *NotFoundError when a referenced column or task does not exist
//
// # Moves
//
// MoveTask relocates one task within a column or across columns. Within a
// column the task is removed first and reinserted at the destination index of
// the shortened list. Destination indices are clamped. A move into a column
// that no longer exists is a no-op.
package board
