package models

// Member is one entry in a room's presence list.
type Member struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Drawing tools understood by the canvas. Each tool populates its own
// geometry fields on DrawOp; the rest stay zero.
type Tool string

const (
	ToolBrush  Tool = "brush"
	ToolEraser Tool = "eraser"
	ToolLine   Tool = "line"
	ToolCircle Tool = "circle"
	ToolRect   Tool = "rect"
)

// DrawOp is a single committed draw gesture. It is fanned out live to the
// sender's peers and never stored; the durable artifact is the raster
// snapshot in Image, when the client includes one.
type DrawOp struct {
	Room string `json:"room"`
	Tool Tool   `json:"tool"`

	// brush / eraser segment
	PrevX    float64 `json:"prevX"`
	PrevY    float64 `json:"prevY"`
	CurrentX float64 `json:"currentX"`
	CurrentY float64 `json:"currentY"`

	// line endpoints
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`

	// circle
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Radius  float64 `json:"radius"`

	// rect
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Color     string `json:"color"`
	BrushSize int    `json:"brushSize"`
	Username  string `json:"username"`

	// Image, when set, is the encoded raster snapshot after the gesture and
	// becomes the new canonical state for late joiners.
	Image string `json:"image,omitempty"`
}

// ChatMessage carries one chat line. UserID is attached server-side on the
// way out.
type ChatMessage struct {
	Room      string `json:"room,omitempty"`
	User      string `json:"user"`
	Msg       string `json:"msg"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"userId,omitempty"`
}

// TypingNotice signals that a member started or stopped typing.
type TypingNotice struct {
	Room string `json:"room,omitempty"`
	User string `json:"user"`
}

// CanvasSnapshot announces a full canvas state (undo, redo, late-joiner
// resync). Image is the opaque encoded raster; empty means blank canvas.
type CanvasSnapshot struct {
	Room     string `json:"room,omitempty"`
	Username string `json:"username,omitempty"`
	Image    string `json:"imageData"`
}

// ClearNotice resets a room's canvas to blank.
type ClearNotice struct {
	Room     string `json:"room,omitempty"`
	Username string `json:"username"`
}

// FileShare carries an inline file payload between members.
type FileShare struct {
	Room      string `json:"room,omitempty"`
	FileName  string `json:"fileName"`
	FileData  string `json:"fileData"`
	FileType  string `json:"fileType"`
	FileSize  int64  `json:"fileSize"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
}

// Presence is a join/leave notification for one connection.
type Presence struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
