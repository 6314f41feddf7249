package model

import "github.com/goliatone/go-compare/pkg/fields"

// Candidate key spellings for block level fields. The canonical name comes
// first, followed by the hyphenated, snake_case and camelCase spellings used
// by earlier authoring models.
var (
	TitleKeys       = fields.Keys{"title", "compare-title", "compare_title", "compareTitle", "content_title"}
	DescriptionKeys = fields.Keys{"description", "descriptionHTML", "content_descriptionHTML", "compare-description", "compare_description", "compareDescription"}

	LeftTitleKeys = fields.Keys{"leftTitle", "left-title", "left_title", "left-bike-name", "left_bike_name", "leftBikeName"}
	LeftImageKeys = fields.Keys{"leftImage", "left-image", "left_image", "left-bike-image", "left_bike_image", "leftBikeImage"}
	LeftAltKeys   = fields.Keys{"leftAlt", "left-alt", "left_alt", "leftImageAlt", "left-image-alt", "left_image_alt"}

	RightTitleKeys = fields.Keys{"rightTitle", "right-title", "right_title", "right-bike-name", "right_bike_name", "rightBikeName"}
	RightImageKeys = fields.Keys{"rightImage", "right-image", "right_image", "right-bike-image", "right_bike_image", "rightBikeImage"}
	RightAltKeys   = fields.Keys{"rightAlt", "right-alt", "right_alt", "rightImageAlt", "right-image-alt", "right_image_alt"}

	BrochureKeys = fields.Keys{"brochureUrl", "brochure-url", "brochure_url", "brochure"}
)
