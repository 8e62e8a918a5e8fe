package domain

import (
	"slices"
	"time"
)

// VoteDirection identifies which side of a question's vote record an event
// targets.
type VoteDirection string

const (
	VoteLike    VoteDirection = "like"
	VoteDislike VoteDirection = "dislike"
)

func (d VoteDirection) Valid() bool {
	return d == VoteLike || d == VoteDislike
}

// Question is a posted question together with its vote record: the sets of
// users currently liking and disliking it, and counters mirroring the set
// sizes. The counters are never written directly; Toggle re-derives them
// from the sets at every commit point.
type Question struct {
	ID          string
	OwnerID     string
	Description string
	Likers      []string
	Dislikers   []string
	Likes       int
	Dislikes    int
	CreatedAt   time.Time
}

// VoteToggle describes the membership change produced by a single toggle,
// for stores that persist membership rows individually.
type VoteToggle struct {
	VoterID   string
	Direction VoteDirection
	Cast      bool
}

// Toggle flips the voter's membership for the given direction. A voter not
// in the set is added and the matching counter incremented; a voter already
// in the set is removed and the counter decremented. The like and dislike
// sets are independent: toggling one direction never touches the other.
func (q *Question) Toggle(voterID string, direction VoteDirection) VoteToggle {
	members := &q.Likers
	if direction == VoteDislike {
		members = &q.Dislikers
	}

	cast := true
	if i := slices.Index(*members, voterID); i >= 0 {
		*members = slices.Delete(*members, i, i+1)
		cast = false
	} else {
		*members = append(*members, voterID)
	}

	q.Likes = len(q.Likers)
	q.Dislikes = len(q.Dislikers)

	return VoteToggle{VoterID: voterID, Direction: direction, Cast: cast}
}

// HasVote reports whether the voter is currently in the membership set for
// the given direction.
func (q *Question) HasVote(voterID string, direction VoteDirection) bool {
	if direction == VoteDislike {
		return slices.Contains(q.Dislikers, voterID)
	}
	return slices.Contains(q.Likers, voterID)
}

// QuestionSnapshot is the externally visible view of a question. Membership
// sets stay internal; only the counters are exposed.
type QuestionSnapshot struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Likes       int    `json:"likes"`
	Dislikes    int    `json:"dislikes"`
}

func (q Question) Snapshot() QuestionSnapshot {
	return QuestionSnapshot{
		ID:          q.ID,
		Description: q.Description,
		Likes:       q.Likes,
		Dislikes:    q.Dislikes,
	}
}
