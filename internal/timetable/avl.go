package timetable

import (
	"fmt"
	"strings"

	"github.com/noah-isme/timetable-api/internal/models"
)

type avlNode struct {
	entry       models.Entry
	left, right *avlNode
	height      int
}

func (n *avlNode) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *avlNode) recalcHeight() {
	n.height = 1 + max(n.left.getHeight(), n.right.getHeight())
}

func (n *avlNode) rotateLeft() *avlNode {
	newRoot := n.right
	n.right = newRoot.left
	newRoot.left = n
	n.recalcHeight()
	newRoot.recalcHeight()
	return newRoot
}

func (n *avlNode) rotateRight() *avlNode {
	newRoot := n.left
	n.left = newRoot.right
	newRoot.right = n
	n.recalcHeight()
	newRoot.recalcHeight()
	return newRoot
}

func (n *avlNode) rebalance() *avlNode {
	n.recalcHeight()
	balance := n.left.getHeight() - n.right.getHeight()
	if balance < -1 {
		if n.right.left.getHeight() > n.right.right.getHeight() {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	}
	if balance > 1 {
		if n.left.right.getHeight() > n.left.left.getHeight() {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	}
	return n
}

// ScheduleTree is a self-balancing tree over committed entries, keyed by
// (day, startTime). Equal keys are allowed and kept in the right subtree.
// Candidate entries are checked against the whole same-day set before any
// structural mutation, so a rejected insert leaves the tree untouched.
type ScheduleTree struct {
	root *avlNode
	size int
}

// NewScheduleTree returns an empty schedule tree.
func NewScheduleTree() *ScheduleTree {
	return &ScheduleTree{}
}

// compareEntries orders by day (case-folded weekday string), then start
// time. It defines the tree key only; conflict detection is separate.
func compareEntries(a, b models.Entry) int {
	dayA := strings.ToLower(a.TimeSlot.Day)
	dayB := strings.ToLower(b.TimeSlot.Day)
	if dayA != dayB {
		return strings.Compare(dayA, dayB)
	}
	return strings.Compare(a.TimeSlot.StartTime, b.TimeSlot.StartTime)
}

// Insert adds the candidate entry if it conflicts with nothing already
// committed. On rejection it returns the conflict descriptions and the
// tree is left exactly as it was.
func (t *ScheduleTree) Insert(entry models.Entry) []string {
	conflicts := t.conflictsWith(entry)
	if len(conflicts) > 0 {
		return conflicts
	}
	t.root = insertNode(t.root, entry)
	t.size++
	return nil
}

func insertNode(node *avlNode, entry models.Entry) *avlNode {
	if node == nil {
		return &avlNode{entry: entry, height: 1}
	}
	if compareEntries(entry, node.entry) < 0 {
		node.left = insertNode(node.left, entry)
	} else {
		node.right = insertNode(node.right, entry)
	}
	return node.rebalance()
}

// conflictsWith collects every committed entry on the candidate's day that
// shares a room or professor and strictly overlaps it in time.
func (t *ScheduleTree) conflictsWith(candidate models.Entry) []string {
	var conflicts []string
	t.walkDay(t.root, candidate.TimeSlot.Day, func(existing models.Entry) {
		if candidate.ConflictsWith(existing) {
			conflicts = append(conflicts, fmt.Sprintf("Conflict detected with: %s at %s",
				existing.Course.Name, existing.TimeSlot.StartTime))
		}
	})
	return conflicts
}

// walkDay visits same-day entries in-order, pruning subtrees whose key
// range cannot contain the day.
func (t *ScheduleTree) walkDay(node *avlNode, day string, visit func(models.Entry)) {
	if node == nil {
		return
	}
	cmp := strings.Compare(strings.ToLower(day), strings.ToLower(node.entry.TimeSlot.Day))
	if cmp <= 0 {
		t.walkDay(node.left, day, visit)
	}
	if cmp == 0 {
		visit(node.entry)
	}
	if cmp >= 0 {
		t.walkDay(node.right, day, visit)
	}
}

// All returns every committed entry in (day, startTime) order.
func (t *ScheduleTree) All() []models.Entry {
	entries := make([]models.Entry, 0, t.size)
	inOrder(t.root, func(e models.Entry) {
		entries = append(entries, e)
	})
	return entries
}

// FindByDay returns the committed entries on the given day in start-time
// order. Day matching is case-insensitive.
func (t *ScheduleTree) FindByDay(day string) []models.Entry {
	entries := []models.Entry{}
	t.walkDay(t.root, day, func(e models.Entry) {
		entries = append(entries, e)
	})
	return entries
}

// Len returns the number of committed entries.
func (t *ScheduleTree) Len() int {
	return t.size
}

func inOrder(node *avlNode, visit func(models.Entry)) {
	if node == nil {
		return
	}
	inOrder(node.left, visit)
	visit(node.entry)
	inOrder(node.right, visit)
}
