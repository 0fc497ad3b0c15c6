// Package uploads stores employee profile pictures and supporting documents
// under the web-servable content root and records their public paths.
package uploads

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"employee-records/app/models"
	"employee-records/app/validation"

	"github.com/google/uuid"
)

// MaxProfilePictureSize is the upload cap for profile pictures.
const MaxProfilePictureSize = 150 * 1024 // 150 KB

// MaxDocuments is the number of document slots on a record.
const MaxDocuments = 4

var permittedPictureExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// invalidFileNameChars are characters stripped from folder names derived from
// user input. Matches the broader Windows-style set so names stay portable.
const invalidFileNameChars = `<>:"/\|?*`

// SafeFolderName derives a filesystem-legal directory name from an employee's
// first name: invalid characters become underscores, as do spaces, and
// leading/trailing underscores are trimmed.
func SafeFolderName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(invalidFileNameChars, r) {
			return '_'
		}
		return r
	}, name)
	mapped = strings.ReplaceAll(mapped, " ", "_")
	return strings.Trim(mapped, "_")
}

// SaveProfilePicture validates and stores an uploaded picture for the
// employee. Constraint violations (size, extension) are recorded on errs
// under the ProfilePicture field and nothing is written. The returned error
// is an infrastructure failure only. The caller removes any replaced file
// with RemoveStored once the whole candidate is known to be clean.
func SaveProfilePicture(contentRoot string, employee *models.EmployeeDetail, file *multipart.FileHeader, errs validation.Errors) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))

	if file.Size > MaxProfilePictureSize {
		errs.Add("ProfilePicture", "Profile picture must be less than 150 KB.")
		return nil
	}
	if !permittedPictureExts[ext] {
		errs.Add("ProfilePicture", "Only JPG or PNG images are allowed.")
		return nil
	}

	safeName := SafeFolderName(employee.FirstName)
	uploadDir := filepath.Join(contentRoot, "uploads", "profile", safeName)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return err
	}

	fileName := "profile_" + uuid.New().String() + ext
	diskPath := filepath.Join(uploadDir, fileName)
	if err := writeFile(file, diskPath); err != nil {
		return err
	}

	publicPath := "/uploads/profile/" + safeName + "/" + fileName
	employee.ProfilePicture = &publicPath

	// Inline copy for immediate display without a second disk read.
	data, err := os.ReadFile(diskPath)
	if err != nil {
		return err
	}
	employee.InlineProfilePicture = "data:image/" + strings.TrimPrefix(ext, ".") + ";base64," + base64.StdEncoding.EncodeToString(data)

	return nil
}

// RemoveStored deletes the file a stored public path points at. A path whose
// file is already gone is not an error.
func RemoveStored(contentRoot, publicPath string) error {
	if publicPath == "" {
		return nil
	}
	diskPath := filepath.Join(contentRoot, filepath.FromSlash(strings.TrimPrefix(publicPath, "/")))
	if _, err := os.Stat(diskPath); err != nil {
		return nil
	}
	return os.Remove(diskPath)
}

// SaveDocuments stores up to four uploaded documents for the employee and
// assigns their public paths to the document slots positionally. Files beyond
// the fourth are dropped.
func SaveDocuments(contentRoot string, employee *models.Employee, files []*multipart.FileHeader) error {
	safeName := SafeFolderName(employee.FirstName)
	uploadDir := filepath.Join(contentRoot, "uploads", "documents", safeName)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return err
	}

	if len(files) > MaxDocuments {
		files = files[:MaxDocuments]
	}

	var paths []string
	for _, file := range files {
		fileName := uuid.New().String() + "_" + filepath.Base(file.Filename)
		if err := writeFile(file, filepath.Join(uploadDir, fileName)); err != nil {
			return err
		}
		paths = append(paths, "/uploads/documents/"+safeName+"/"+fileName)
	}

	employee.SetDocuments(paths)
	return nil
}

func writeFile(file *multipart.FileHeader, diskPath string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(diskPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
