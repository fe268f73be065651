package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"campus-events-backend/cmd/campus-events/model"
)

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

var dataURIPattern = regexp.MustCompile(`(?s)^data:([^;,]*)(?:;[^,]*)?,(.*)$`)

// provided treats a missing or blank optional field as absent.
func provided(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	v := strings.TrimSpace(*value)
	return v, v != ""
}

// ImageRef is what gets stored as the event image: the link when one was
// given, else the inline data URI. Only call it on validated input.
func ImageRef(in model.CreateEventInput) *string {
	if link, ok := provided(in.ImageURL); ok {
		return &link
	}
	if dataURI, ok := provided(in.Image); ok {
		return &dataURI
	}
	return nil
}

// images applies the image switch to both the inline image and the link.
func (c *collector) images(in model.CreateEventInput, limits model.PolicyLimits) {
	dataURI, hasImage := provided(in.Image)
	link, hasLink := provided(in.ImageURL)
	if !hasImage && !hasLink {
		return
	}
	if !limits.AllowImages {
		c.add("Image uploads are currently disabled")
		return
	}

	if hasImage {
		c.image(dataURI, limits)
	}
	if hasLink {
		c.imageLink(link)
	}
}

func (c *collector) imageLink(link string) {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.add("Image URL must be an http or https link")
	}
}

func (c *collector) image(dataURI string, limits model.PolicyLimits) {
	m := dataURIPattern.FindStringSubmatch(dataURI)
	if m == nil {
		c.add("Image must be a PNG, JPEG, or WebP file")
		return
	}
	if _, ok := allowedImageTypes[m[1]]; !ok {
		c.add("Image must be a PNG, JPEG, or WebP file")
		return
	}

	if float64(DecodedSize(m[2])) > limits.MaxImageMB*1024*1024 {
		c.add(fmt.Sprintf("Image must be %s MB or less", strconv.FormatFloat(limits.MaxImageMB, 'f', -1, 64)))
	}
}

// DecodedSize approximates the byte length of a base64 payload.
func DecodedSize(payload string) int {
	return len(payload) * 3 / 4
}
