package gateway

import (
	"fmt"
	"strings"

	"github.com/cogniquest/cogniquest/internal/llm"
	"github.com/cogniquest/cogniquest/internal/quiz"
)

// combineText joins the text materials into one block, each section
// headed by its file name so the model can attribute content.
func combineText(materials []quiz.SourceMaterial) string {
	var b strings.Builder
	for _, m := range materials {
		if m.Kind != quiz.MaterialText {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		if m.FileName != "" {
			fmt.Fprintf(&b, "--- %s ---\n", m.FileName)
		}
		b.WriteString(m.Content)
	}
	return b.String()
}

// imageAttachments converts image materials to provider attachments.
func imageAttachments(materials []quiz.SourceMaterial) []llm.ImageAttachment {
	var images []llm.ImageAttachment
	for _, m := range materials {
		if m.Kind != quiz.MaterialImage {
			continue
		}
		images = append(images, llm.ImageAttachment{
			Name: m.FileName,
			MIME: m.MIME,
			Data: m.Data,
		})
	}
	return images
}

// describeImages names the attached images in the text body so the
// request stays meaningful in logs and for text-only fallbacks.
func describeImages(images []llm.ImageAttachment) string {
	if len(images) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nAttached images:\n")
	for _, img := range images {
		fmt.Fprintf(&b, "[image: %s]\n", img.Name)
	}
	return b.String()
}
