package release

// Link kinds, in display order.
const (
	LinkJAR     = "jar"
	LinkZip     = "zip"
	LinkTar     = "tar"
	LinkRelease = "release"
)

// Link is a download or navigation target for a release.
type Link struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Links returns the package artifact, ZIP archive, TAR archive and GitHub
// release page links for r, in that order.
func (p Project) Links(r Release) []Link {
	artifact := r.ArtifactURL
	if artifact == "" {
		artifact = p.ArtifactURL(r.Name)
	}
	return []Link{
		{Kind: LinkJAR, Label: "Download JAR", URL: artifact},
		{Kind: LinkZip, Label: "Source (zip)", URL: r.ZipballURL},
		{Kind: LinkTar, Label: "Source (tar.gz)", URL: r.TarballURL},
		{Kind: LinkRelease, Label: "GitHub release", URL: p.ReleasePageURL(r.Name)},
	}
}
