package route

import "lintang/flightpath/pkg/geo"

// DragSession tracks one marker drag: Idle -> Dragging(index) -> Idle.
type DragSession struct {
	editor   *Editor
	index    int
	original geo.GeoPoint
	active   bool
}

func NewDragSession(e *Editor) *DragSession {
	return &DragSession{editor: e, index: -1}
}

func (d *DragSession) Active() bool {
	return d.active
}

// Index of the waypoint being dragged, -1 when idle.
func (d *DragSession) Index() int {
	if !d.active {
		return -1
	}
	return d.index
}

// Begin starts dragging the waypoint at index. A drag already in progress is
// committed first.
func (d *DragSession) Begin(index int) error {
	wp, err := d.editor.At(index)
	if err != nil {
		return err
	}
	d.index = index
	d.original = wp.Point
	d.active = true
	return nil
}

func (d *DragSession) Update(p geo.GeoPoint) error {
	if !d.active {
		return ErrNotDragging
	}
	_, err := d.editor.MoveTo(d.index, p)
	return err
}

// End commits the current position.
func (d *DragSession) End() error {
	if !d.active {
		return ErrNotDragging
	}
	d.reset()
	return nil
}

// Cancel puts the waypoint back where the drag started.
func (d *DragSession) Cancel() error {
	if !d.active {
		return ErrNotDragging
	}
	_, err := d.editor.MoveTo(d.index, d.original)
	d.reset()
	return err
}

func (d *DragSession) reset() {
	d.active = false
	d.index = -1
	d.original = geo.GeoPoint{}
}
