package board

import (
	"strconv"
	"time"
)

// Well-known ids of the built-in default columns.
const (
	DefaultTodoID       = "todo"
	DefaultInProgressID = "inProgress"
	DefaultDoneID       = "done"
)

type seedTask struct {
	column   int
	content  string
	priority Priority
	day      int
}

var seedTasks = []seedTask{
	{0, "Setup Project React", PriorityHigh, 12},
	{1, "Membuat Komponen Utama", PriorityMedium, 14},
}

// NewDefaultBoard returns the starter board used when nothing is persisted.
// Seed dates are 12 and 14 December rendered with the store's formatter.
func (s *Store) NewDefaultBoard() Board {
	b := Board{Columns: []Column{
		{ID: DefaultTodoID, Title: "To Do", Color: ColorPink, Items: []Task{}},
		{ID: DefaultInProgressID, Title: "In Progress", Color: ColorBlue, Items: []Task{}},
		{ID: DefaultDoneID, Title: "Done", Color: ColorEmerald, Items: []Task{}},
	}}
	year := s.now().Year()
	for _, st := range seedTasks {
		col := &b.Columns[st.column]
		col.Items = append(col.Items, Task{
			ID:       s.seedID(b),
			Content:  st.content,
			Priority: st.priority,
			Date:     s.formatDate(time.Date(year, time.December, st.day, 0, 0, 0, 0, time.UTC)),
		})
	}
	return b
}

// seedID draws from the generator like any new task. When the generator
// keeps colliding it falls back to numbered ids.
func (s *Store) seedID(b Board) string {
	if id, err := s.freshID(b); err == nil {
		return id
	}
	for n := 1; ; n++ {
		id := "task-" + strconv.Itoa(n)
		if !b.hasID(id) {
			return id
		}
	}
}
