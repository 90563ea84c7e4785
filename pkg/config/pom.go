package config

import (
	"github.com/beevik/etree"

	"github.com/diststage/diststage/pkg/errors"
	"github.com/diststage/diststage/pkg/logging"
)

// PomCoordinates are the fields diststage reads from a Maven pom.xml.
type PomCoordinates struct {
	ArtifactID string
	Version    string
	SiteURL    string
}

// ReadPom extracts the project coordinates from a pom.xml. A version missing
// on the project element falls back to the parent version, as Maven does.
func ReadPom(path string) (PomCoordinates, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return PomCoordinates{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read pom %s", path).
			WithDetail("path", path)
	}

	project := doc.SelectElement("project")
	if project == nil {
		return PomCoordinates{}, errors.Newf(errors.ErrConfigParse, "pom %s has no <project> element", path).
			WithDetail("path", path)
	}

	coords := PomCoordinates{
		ArtifactID: elementText(project, "artifactId"),
		Version:    elementText(project, "version"),
		SiteURL:    elementText(project, "url"),
	}
	if coords.Version == "" {
		if parent := project.SelectElement("parent"); parent != nil {
			coords.Version = elementText(parent, "version")
		}
	}
	return coords, nil
}

// applyPom fills empty project coordinates from the configured pom file.
// Explicitly configured values always win.
func applyPom(cfg *Config) error {
	logger := logging.GetLogger("config")

	coords, err := ReadPom(cfg.Project.Pom)
	if err != nil {
		return err
	}

	if cfg.Project.ArtifactID == "" {
		cfg.Project.ArtifactID = coords.ArtifactID
	}
	if cfg.Project.Version == "" {
		cfg.Project.Version = coords.Version
	}
	if cfg.Project.SiteURL == "" {
		cfg.Project.SiteURL = coords.SiteURL
	}

	logger.Debug().
		Str("artifactId", cfg.Project.ArtifactID).
		Str("version", cfg.Project.Version).
		Msg("Applied pom coordinates")
	return nil
}

func elementText(parent *etree.Element, name string) string {
	if el := parent.SelectElement(name); el != nil {
		return el.Text()
	}
	return ""
}
