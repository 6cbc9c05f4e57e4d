package workspace

import "fmt"

const (
	// DefaultFolderName is created under the base directory
	DefaultFolderName = "my_temp_python_folder"
	// ReportFileName holds the local address details
	ReportFileName = "local_address_details.txt"
	// MessageFileName holds MessageText
	MessageFileName = "another_file.txt"

	// PlaceholderIP is written verbatim; no interface is ever queried.
	PlaceholderIP = "192.168.0.1"

	// MessageText is the exact content of MessageFileName, without a trailing newline
	MessageText = "This is another file in the folder."
	// SuccessMessage is printed once both files are written
	SuccessMessage = "Folder and files created successfully!"
)

// Report is the content of ReportFileName
type Report struct {
	Username  string
	Directory string
	IPAddress string
}

// Render returns the three newline-terminated report lines
func (r Report) Render() string {
	return fmt.Sprintf("Username: %s\nCurrent Directory: %s\nIP Address: %s\n",
		r.Username, r.Directory, r.IPAddress)
}
