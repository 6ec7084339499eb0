package view

import (
	"github.com/suyashkumar/dicom"

	dcmerrors "github.com/caio-sobreiro/dcmview/errors"
)

// ReadFile parses the DICOM file at path. Bulk pixel data is skipped during
// parsing since this viewer never displays it; the Pixel Data element still
// appears in the dataset and is suppressed by the classifier. Failures come
// back as a *errors.ReadError carrying the offending path.
func ReadFile(path string) (dicom.Dataset, error) {
	ds, err := dicom.ParseFile(path, nil, dicom.SkipPixelData())
	if err != nil {
		return dicom.Dataset{}, dcmerrors.NewReadError(path, err)
	}
	return ds, nil
}
