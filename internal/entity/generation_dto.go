package entity

// GenerateSiteRequest is the body of POST /generate-code.
type GenerateSiteRequest struct {
	Description string `json:"description"`
	PageCount   int    `json:"pageCount"`
}

// GenerateBusinessSiteRequest is the body of POST /generate-business-site.
type GenerateBusinessSiteRequest struct {
	Description string `json:"description"`
}

// DownloadRequest is the body of POST /download: a previously returned
// bundle to be streamed back as a zip archive.
type DownloadRequest struct {
	Pages []string `json:"pages"`
	HTML  []string `json:"html"`
	CSS   string   `json:"css"`
	JS    string   `json:"js"`
}
