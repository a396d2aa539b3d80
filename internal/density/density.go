// Package density holds the Android screen-density buckets the notification
// icons are generated for, and builds the res-tree paths they are written to.
package density

import (
	"fmt"
	"path/filepath"
)

// Density is one Android screen-density bucket and the pixel edge length a
// square notification icon has in that bucket.
type Density struct {
	Name string // bucket name, e.g. "xhdpi"
	Edge int    // icon edge length in pixels
}

// All lists every bucket an icon is generated for, in ascending edge order.
var All = []Density{
	{"mdpi", 24},
	{"hdpi", 36},
	{"xhdpi", 48},
	{"xxhdpi", 72},
	{"xxxhdpi", 96},
}

// Dir returns the drawable directory for a bucket under the res base dir,
// e.g. app/src/main/res/drawable-xhdpi.
func (d Density) Dir(baseDir string) string {
	return filepath.Join(baseDir, "drawable-"+d.Name)
}

// IconPath returns the full path of an icon PNG for this bucket.
func (d Density) IconPath(baseDir, iconName string) string {
	return filepath.Join(d.Dir(baseDir), iconName+".png")
}

// BackupPath returns where an icon's pre-edit copy is kept for this bucket,
// e.g. backups/ic_notification_cigarette_xhdpi.png.backup.
func (d Density) BackupPath(backupDir, iconName string) string {
	return filepath.Join(backupDir, fmt.Sprintf("%s_%s.png.backup", iconName, d.Name))
}
