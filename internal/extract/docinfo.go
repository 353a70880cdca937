package extract

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/adeola-io/pdf-renamer/internal/common"
)

// DocInfo summarizes a document's structure without extracting text.
// HasImageStreams with a low page count is the usual signature of a
// scanned document that will need the OCR path.
type DocInfo struct {
	PageCount       int  `json:"page_count"`
	Encrypted       bool `json:"encrypted"`
	HasImageStreams bool `json:"has_image_streams"`
}

// Inspector probes PDF structure via pdfcpu.
type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

func (Inspector) Inspect(path string) (DocInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return DocInfo{}, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return DocInfo{}, common.WrapError(common.ErrMalformedInput, err.Error())
	}

	return DocInfo{
		PageCount:       ctx.PageCount,
		Encrypted:       ctx.Encrypt != nil,
		HasImageStreams: detectImageStreams(ctx),
	}, nil
}

// detectImageStreams checks if the PDF contains image XObjects.
func detectImageStreams(ctx *model.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	// Fallback: scan the xref table for image subtype objects.
	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}
