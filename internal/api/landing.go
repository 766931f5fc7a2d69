package api

import (
	_ "embed"

	"github.com/russross/blackfriday/v2"
)

//go:embed assets/landing.md
var landingMarkdown []byte

const (
	landingHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tweetverse</title>
</head>
<body>
`
	landingTail = `</body>
</html>
`
)

func renderLanding() []byte {
	body := blackfriday.Run(landingMarkdown, blackfriday.WithExtensions(blackfriday.CommonExtensions))

	page := make([]byte, 0, len(landingHead)+len(body)+len(landingTail))
	page = append(page, landingHead...)
	page = append(page, body...)
	return append(page, landingTail...)
}
