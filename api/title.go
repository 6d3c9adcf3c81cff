package api

import (
	"context"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-diadoc/models"
)

const generateTitleEndpoint = "/GenerateTitleXml"

// GenerateTitleXml implements [Client]. It POSTs the user contract XML to
// POST /GenerateTitleXml with the box, the document type triple and the title
// index in the query, and returns the generated title. The file name is taken
// from the Content-Disposition header when the service sends one.
func (h *httpClient) GenerateTitleXml(ctx context.Context, token string, req models.TitleRequest) (models.GeneratedFile, error) {
	r := h.request(ctx, token).
		SetQueryParams(map[string]string{
			"boxId":               req.BoxId,
			"documentTypeNamedId": req.DocumentType.TypeNamedId,
			"documentFunction":    req.DocumentType.Function,
			"documentVersion":     req.DocumentType.Version,
			"titleIndex":          strconv.Itoa(req.TitleIndex),
		}).
		SetHeader("Content-Type", "application/xml").
		SetBody(req.UserContractData)

	resp, err := h.execute("generate title", r, http.MethodPost, generateTitleEndpoint)
	if err != nil {
		return models.GeneratedFile{}, err
	}

	return models.GeneratedFile{
		FileName: fileNameFromDisposition(resp.Header().Get("Content-Disposition")),
		Content:  resp.Body(),
	}, nil
}

// GenerateTitleXmlAsync implements [Client].
func (h *httpClient) GenerateTitleXmlAsync(ctx context.Context, token string, req models.TitleRequest) *Future[models.GeneratedFile] {
	return async(ctx, func(ctx context.Context) (models.GeneratedFile, error) {
		return h.GenerateTitleXml(ctx, token, req)
	})
}

func fileNameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
