package domain

// EntryType classifies a time entry as productive investment or borrowed time.
type EntryType string

const (
	EntryTypeAsset     EntryType = "asset"
	EntryTypeLiability EntryType = "liability"
)

// IsValid checks if the entry type is a known value.
func (t EntryType) IsValid() bool {
	return t == EntryTypeAsset || t == EntryTypeLiability
}

// Category identifies what the time in an entry was spent on.
type Category string

const (
	CategoryDeepWork        Category = "deep-work"
	CategoryExercise        Category = "exercise"
	CategoryLearning        Category = "learning"
	CategoryCreative        Category = "creative"
	CategorySocialMedia     Category = "social-media"
	CategoryStreaming       Category = "streaming"
	CategoryGaming          Category = "gaming"
	CategoryProcrastination Category = "procrastination"
	CategoryMeetings        Category = "meetings"
	CategoryOther           Category = "other"
)

// AllCategories lists every valid category.
var AllCategories = []Category{
	CategoryDeepWork,
	CategoryExercise,
	CategoryLearning,
	CategoryCreative,
	CategorySocialMedia,
	CategoryStreaming,
	CategoryGaming,
	CategoryProcrastination,
	CategoryMeetings,
	CategoryOther,
}

// AssetCategories lists the categories conventionally used for asset entries.
// The split is a display convention; any valid category is accepted on either
// entry type.
var AssetCategories = []Category{
	CategoryDeepWork,
	CategoryExercise,
	CategoryLearning,
	CategoryCreative,
	CategoryMeetings,
}

// LiabilityCategories lists the categories conventionally used for liability entries.
var LiabilityCategories = []Category{
	CategorySocialMedia,
	CategoryStreaming,
	CategoryGaming,
	CategoryProcrastination,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryDeepWork:        "Deep Work",
	CategoryExercise:        "Exercise",
	CategoryLearning:        "Learning",
	CategoryCreative:        "Creative Work",
	CategorySocialMedia:     "Social Media",
	CategoryStreaming:       "Streaming",
	CategoryGaming:          "Gaming",
	CategoryProcrastination: "Procrastination",
	CategoryMeetings:        "Meetings",
	CategoryOther:           "Other",
}

// IsValid checks if the category is a member of the enumeration.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
