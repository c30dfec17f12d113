package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account. Every domain row below is scoped
// to the user that owns it.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Member is a community member tracked for attendance.
type Member struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"-"`
	Name         string     `db:"name" json:"name"`
	Surname      string     `db:"surname" json:"surname"`
	HouseColor   HouseColor `db:"house_color" json:"house_color"`
	Address      string     `db:"address" json:"address"`
	ITSNumber    string     `db:"its_number" json:"its_number"`
	MobileNumber string     `db:"mobile_number" json:"mobile_number"`
	Grade        string     `db:"grade" json:"grade"`
	Class        string     `db:"class" json:"class"`
	ProfilePhoto string     `db:"profile_photo" json:"profile_photo,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Group is a named set of members.
type Group struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"-"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// GroupMember links a member to a group.
type GroupMember struct {
	GroupID  uuid.UUID `db:"group_id" json:"group_id"`
	MemberID uuid.UUID `db:"member_id" json:"member_id"`
	AddedAt  time.Time `db:"added_at" json:"added_at"`
}

// Occasion is an event attendance is marked against.
type Occasion struct {
	ID               uuid.UUID         `db:"id" json:"id"`
	UserID           uuid.UUID         `db:"user_id" json:"-"`
	Title            string            `db:"title" json:"title"`
	Place            string            `db:"place" json:"place"`
	Date             time.Time         `db:"date" json:"date"`
	StartTime        string            `db:"start_time" json:"start_time"`
	EndTime          string            `db:"end_time" json:"end_time"`
	Notes            string            `db:"notes" json:"notes,omitempty"`
	KalamAssignments []KalamAssignment `db:"-" json:"kalam_assignments,omitempty"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// KalamAssignment assigns a kalam slot to a group for an occasion.
type KalamAssignment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	OccasionID uuid.UUID `db:"occasion_id" json:"occasion_id"`
	KalamType  KalamType `db:"kalam_type" json:"kalam_type"`
	GroupID    uuid.UUID `db:"group_id" json:"group_id"`
	KalamName  string    `db:"kalam_name" json:"kalam_name"`
}

// AttendanceRecord marks a member present or absent for one occasion.
// (member_id, occasion_id) is unique; marking again overwrites.
type AttendanceRecord struct {
	ID         uuid.UUID `db:"id" json:"id"`
	MemberID   uuid.UUID `db:"member_id" json:"member_id"`
	OccasionID uuid.UUID `db:"occasion_id" json:"occasion_id"`
	IsPresent  bool      `db:"is_present" json:"is_present"`
	MarkedAt   time.Time `db:"marked_at" json:"marked_at"`
}

// DashboardStats holds the headline counts for the dashboard.
type DashboardStats struct {
	TotalMembers   int `db:"total_members" json:"total_members"`
	TotalGroups    int `db:"total_groups" json:"total_groups"`
	TotalOccasions int `db:"total_occasions" json:"total_occasions"`
}

// OccasionTrend is one occasion's attendance summary for the trend chart.
type OccasionTrend struct {
	OccasionID uuid.UUID `db:"occasion_id" json:"occasion_id"`
	Title      string    `db:"title" json:"title"`
	Date       time.Time `db:"date" json:"date"`
	Total      int       `db:"total" json:"total"`
	Present    int       `db:"present" json:"present"`
	Absent     int       `db:"absent" json:"absent"`
	Percentage int       `db:"percentage" json:"percentage"`
}

// GroupPerformance is a group's aggregate attendance percentage.
type GroupPerformance struct {
	GroupID     uuid.UUID `db:"group_id" json:"group_id"`
	Name        string    `db:"name" json:"name"`
	Attendance  int       `db:"attendance" json:"attendance"`
	MemberCount int       `db:"member_count" json:"member_count"`
}

// MemberActivity ranks a member by attendance percentage.
type MemberActivity struct {
	MemberID   uuid.UUID `db:"member_id" json:"member_id"`
	Name       string    `db:"name" json:"name"`
	Surname    string    `db:"surname" json:"surname"`
	Attended   int       `db:"attended" json:"attended"`
	Total      int       `db:"total" json:"total"`
	Percentage int       `db:"percentage" json:"percentage"`
}

// MemberAttendanceStats summarizes one member's attendance over all
// occasions. Total counts every occasion, not just marked rows: a member
// with no record for an occasion counts as absent.
type MemberAttendanceStats struct {
	Total      int `json:"total"`
	Attended   int `json:"attended"`
	Percentage int `json:"percentage"`
}
