package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category determines an employee's required daily hours and official start time.
type Category string

const (
	CategoryEightHour  Category = "eight_hour"
	CategoryElevenHour Category = "eleven_hour"
)

// CategoryRule is the authoritative mapping from category to working-time
// parameters. All start-time and required-hours decisions go through RuleFor;
// nothing re-derives these from the category string.
type CategoryRule struct {
	StartHour     int
	StartMinute   int
	RequiredHours int
}

var categoryRules = map[Category]CategoryRule{
	CategoryEightHour:  {StartHour: 9, StartMinute: 0, RequiredHours: 8},
	CategoryElevenHour: {StartHour: 8, StartMinute: 0, RequiredHours: 11},
}

// defaultRule is applied to any unrecognized category.
var defaultRule = CategoryRule{StartHour: 9, StartMinute: 0, RequiredHours: 8}

// RuleFor returns the working-time rule for a category, falling back to the
// eight-hour defaults for unknown values.
func RuleFor(c Category) CategoryRule {
	if rule, ok := categoryRules[c]; ok {
		return rule
	}
	return defaultRule
}

// StartTimeOn anchors the rule's official start time on the given calendar day.
func (r CategoryRule) StartTimeOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), r.StartHour, r.StartMinute, 0, 0, date.Location())
}

type Employee struct {
	ID          string
	Name        string
	Category    Category
	GrossSalary decimal.Decimal
	Department  string
	JoiningDate time.Time
	IsActive    bool
	IsRepeated  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequiredHoursPerDay returns the category's daily duty hours.
func (e Employee) RequiredHoursPerDay() int {
	return RuleFor(e.Category).RequiredHours
}
