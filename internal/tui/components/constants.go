package components

const (
	ColumnContentWidth   = 30 // ColumnContentWidth is the inner width of a column
	TaskCardHeight       = 4  // TaskCardHeight is the fixed height of the task card
	taskTitleMaxLength   = 21 // Maximum display length for task title before truncation
	columnBorderOverhead = 2  // top border + bottom border
	headerLines          = 1  // column name and count
	topIndicatorLines    = 1  // empty line or "▲ more above"

	// TaskViewFooter is the key hint shown under a task's description
	TaskViewFooter = "[Esc/Space] close"
)
