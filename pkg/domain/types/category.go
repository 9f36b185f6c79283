package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// CategoryID is the slug of an action category (post, reels, todo, ...)
type CategoryID string

const (
	CategoryPost     CategoryID = "post"
	CategoryReels    CategoryID = "reels"
	CategoryCarousel CategoryID = "carousel"
	CategoryStories  CategoryID = "stories"
	CategoryCapture  CategoryID = "capture"
	CategoryTodo     CategoryID = "todo"
	CategoryMeeting  CategoryID = "meeting"
	CategoryAds      CategoryID = "ads"
	CategoryFinance  CategoryID = "finance"
	CategoryDesign   CategoryID = "design"
	CategoryPrint    CategoryID = "print"
	CategoryDev      CategoryID = "dev"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// InstagramFeedCategories returns the categories published on the Instagram feed
func InstagramFeedCategories() []CategoryID {
	return []CategoryID{
		CategoryPost,
		CategoryReels,
		CategoryCarousel,
		CategoryStories,
	}
}

// IsInstagramFeed reports whether the category carries an Instagram publish date
func (c CategoryID) IsInstagramFeed() bool {
	switch c {
	case CategoryPost, CategoryReels, CategoryCarousel, CategoryStories:
		return true
	default:
		return false
	}
}

// Validate checks if the CategoryID is valid
func (c CategoryID) Validate() error {
	return validateSlug("category", string(c))
}

// String returns the string representation of CategoryID
func (c CategoryID) String() string {
	return string(c)
}

func validateSlug(kind, s string) error {
	if s == "" {
		return goerr.New(kind + " ID cannot be empty")
	}
	if !idPattern.MatchString(s) {
		return goerr.New(kind+" ID must be lowercase alphanumeric with hyphens", goerr.V("id", s))
	}
	return nil
}
