package dto

// SaveTutorialRequest upserts a global tutorial. Id empty means create; the
// slug is always derived from the title.
type SaveTutorialRequest struct {
	Id          string `form:"id"`
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Url         string `form:"url" validate:"required"`
}

// TutorialIndexItem is one entry of the aggregated tutorials index page:
// either an app's video tutorial or a global tutorial.
type TutorialIndexItem struct {
	Title       string
	Url         string
	Icon        string
	Description string
	AppName     string
	AppSlug     string
}
