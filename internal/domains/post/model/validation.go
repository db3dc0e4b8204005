package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"blog-backend/internal/shared/gateway"
)

const (
	EntityName    = "post"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"
)

// Length limits, counted in characters
const (
	MinContentLength = 250
	MaxSummaryLength = 250
)

const (
	CategoryFiction    = "Fiction"
	CategoryNonFiction = "Non-Fiction"
)

// ClickbaitMarkers are matched as case-sensitive substrings of the title
var ClickbaitMarkers = []string{"Won't Believe", "Secret", "Top", "Guess"}

// NewGateway registers the post field validators. None of them touch storage.
func NewGateway() *gateway.Gateway[Post] {
	return gateway.New[Post](EntityName).
		RegisterStatic(FieldTitle,
			validation.By(clickbaitTitle),
		).
		RegisterStatic(FieldContent,
			validation.Required.Error(MsgContentTooShort),
			validation.RuneLength(MinContentLength, 0).Error(MsgContentTooShort),
		).
		RegisterStatic(FieldSummary,
			validation.RuneLength(0, MaxSummaryLength).Error(MsgSummaryTooLong),
		).
		RegisterStatic(FieldCategory,
			validation.Required.Error(MsgCategoryInvalid),
			validation.In(CategoryFiction, CategoryNonFiction).Error(MsgCategoryInvalid),
		)
}

func clickbaitTitle(value interface{}) error {
	v, isNil := validation.Indirect(value)
	title, ok := v.(string)
	if isNil || !ok {
		return validation.NewError("post_title_clickbait", MsgTitleClickbait)
	}

	if !lo.ContainsBy(ClickbaitMarkers, func(marker string) bool {
		return strings.Contains(title, marker)
	}) {
		return validation.NewError("post_title_clickbait", MsgTitleClickbait)
	}
	return nil
}
