package catalog

// Config holds configuration for the remote part catalog service.
type Config struct {
	// BaseURL is the root URL of the catalog API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:3000/api"`
	// KitCategory is the catalog category id that identifies complete kits
	// (as opposed to single parts) in search results.
	KitCategory string `mapstructure:"kit_category" default:"653"`
	// ThumbnailPath is the path prefix prepended to image names from the catalog.
	ThumbnailPath string `mapstructure:"thumbnail_path" default:"/thumbnail/"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
