package cmd

import (
	"fmt"
	"strings"

	"ghapi/internal/errcodes"

	"github.com/AlecAivazis/survey/v2"
)

func fillInteractiveCreateParams(params *createCmdParams) error {
	var qs = []*survey.Question{
		{
			Name: "repository",
			Prompt: &survey.Input{
				Message: "Repository",
				Default: params.Repository,
			},
			Validate: func(val interface{}) error {
				if err := survey.Required(val); err != nil {
					return err
				}

				v := strings.Split(fmt.Sprintf("%v", val), "/")
				if len(v) != 2 || v[0] == "" || v[1] == "" {
					return errcodes.ErrRepositoryMustBeInFormOwnerRepo
				}

				return nil
			},
		},
		{
			Name: "head",
			Prompt: &survey.Input{
				Message: "Head branch",
				Default: params.Head,
			},
			Validate: survey.Required,
		},
		{
			Name: "base",
			Prompt: &survey.Input{
				Message: "Base branch",
				Default: params.Base,
			},
			Validate: survey.Required,
		},
		{
			Name: "title",
			Prompt: &survey.Input{
				Message: "Title",
				Default: params.Title,
			},
			Validate: survey.Required,
		},
		{
			Name: "body",
			Prompt: &survey.Multiline{
				Message: "Body",
				Default: params.Body,
			},
		},
	}

	return survey.Ask(qs, params)
}
