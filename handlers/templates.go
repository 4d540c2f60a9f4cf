package handlers

import (
	"html/template"
)

var loginTmpl *template.Template
var registerTmpl *template.Template
var issuesTmpl *template.Template
var issueDetailsTmpl *template.Template

// InitTemplates parses every page template. Called once at startup; the server
// refuses to start with a broken template.
func InitTemplates() error {
	var err error

	loginTmpl, err = template.ParseFiles(
		"templates/layouts/base.html",
		"templates/pages/login.html",
	)
	if err != nil {
		return err
	}

	registerTmpl, err = template.ParseFiles(
		"templates/layouts/base.html",
		"templates/pages/register.html",
	)
	if err != nil {
		return err
	}

	issuesTmpl, err = LoadTemplate("issues", "templates/pages/issues.html")
	if err != nil {
		return err
	}

	issueDetailsTmpl, err = LoadTemplate("issue_details", "templates/pages/issue_details.html")
	if err != nil {
		return err
	}

	return nil
}
