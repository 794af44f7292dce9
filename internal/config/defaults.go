package config

const (
	defaultExportDir      = "~/facebook-export"
	defaultOutputDir      = "~/facebook-archive"
	defaultSiteTitle      = "Facebook Archive"
	defaultSiteName       = "My Page"
	defaultBannerText     = "This is an archived copy of a Facebook Page."
	defaultBannerLinkURL  = "/"
	defaultBasePath       = "/"
	defaultProfilePicture = "media/profile.jpg"
	defaultCoverPhoto     = "media/cover.jpg"
	defaultServeBind      = "127.0.0.1:8787"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ExportDir: defaultExportDir,
			OutputDir: defaultOutputDir,
		},
		Site: Site{
			Title:          defaultSiteTitle,
			Name:           defaultSiteName,
			BannerText:     defaultBannerText,
			BannerLinkURL:  defaultBannerLinkURL,
			BasePath:       defaultBasePath,
			ProfilePicture: defaultProfilePicture,
			CoverPhoto:     defaultCoverPhoto,
		},
		Serve: Serve{
			Bind: defaultServeBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
