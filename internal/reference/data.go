// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reference holds the static knowledge-base tables shown in the
// sidebar and used to resolve citation markers: Revit shortcut groups, BIM
// information categories, the common-error catalog, and the three source
// manuals. All tables are read-only for the lifetime of the process.
package reference

// =============================================================================
// TYPES
// =============================================================================

// Shortcut is a single Revit keyboard command abbreviation.
type Shortcut struct {
	Key         string
	Command     string
	Description string
}

// ShortcutGroup is a named cluster of related shortcuts.
type ShortcutGroup struct {
	Category string
	Items    []Shortcut
}

// BIMCategory is a Revit object category with a BIM information checklist.
type BIMCategory struct {
	Name        string
	Icon        string
	Description string
}

// CommonError is a known Revit problem with its quick fixes.
type CommonError struct {
	Title     string
	Solutions []string
}

// ManualID identifies one of the three source manuals.
type ManualID string

const (
	ManualRevit01 ManualID = "01"
	ManualRevit02 ManualID = "02"
	ManualErrors  ManualID = "ERR"
)

// Manual describes one source document of the knowledge base.
type Manual struct {
	ID       ManualID
	Title    string
	ColorTag string // lipgloss color hex for the sidebar badge
	URL      string
	Source   string // publishing team shown on citation cards
	Topics   []string
}

// =============================================================================
// STATIC TABLES
// =============================================================================

// ShortcutGroups lists the Revit command groups shown in the sidebar.
var ShortcutGroups = []ShortcutGroup{
	{
		Category: "Thiết lập & Hệ thống",
		Items: []Shortcut{
			{Key: "GR", Command: "Grid", Description: "Tạo lưới trục"},
			{Key: "LL", Command: "Level", Description: "Tạo cao độ"},
			{Key: "UN", Command: "Project Units", Description: "Thiết lập đơn vị"},
		},
	},
	{
		Category: "Dựng hình cơ bản",
		Items: []Shortcut{
			{Key: "WA", Command: "Wall", Description: "Vẽ tường"},
			{Key: "DR", Command: "Door", Description: "Bố trí cửa đi"},
			{Key: "WN", Command: "Window", Description: "Bố trí cửa sổ"},
			{Key: "CL", Command: "Column", Description: "Bố trí cột"},
			{Key: "BM", Command: "Beam", Description: "Bố trí dầm"},
		},
	},
	{
		Category: "Chỉnh sửa (Modify)",
		Items: []Shortcut{
			{Key: "MV", Command: "Move", Description: "Di chuyển"},
			{Key: "CO", Command: "Copy", Description: "Sao chép"},
			{Key: "RO", Command: "Rotate", Description: "Xoay đối tượng"},
			{Key: "TR", Command: "Trim/Extend", Description: "Cắt/Nối đối tượng"},
			{Key: "AL", Command: "Align", Description: "Căn lề đối tượng"},
			{Key: "OF", Command: "Offset", Description: "Tạo bản sao song song"},
		},
	},
	{
		Category: "Hiển thị & Đồ họa",
		Items: []Shortcut{
			{Key: "VG", Command: "Visibility/Graphics", Description: "Quản lý hiển thị"},
			{Key: "HH", Command: "Hide Category", Description: "Ẩn tạm thời category"},
			{Key: "EH", Command: "Hide Element", Description: "Ẩn đối tượng được chọn"},
			{Key: "RH", Command: "Reveal Hidden", Description: "Hiện đối tượng bị ẩn"},
			{Key: "BX", Command: "Section Box", Description: "Cắt 3D vùng chọn"},
			{Key: "TL", Command: "Thin Lines", Description: "Chế độ nét mảnh"},
		},
	},
	{
		Category: "Ghi chú & Hồ sơ",
		Items: []Shortcut{
			{Key: "DI", Command: "Dimension", Description: "Ghi kích thước"},
			{Key: "RM", Command: "Room", Description: "Đặt tên phòng"},
			{Key: "RT", Command: "Room Tag", Description: "Gắn tag tên phòng"},
			{Key: "TX", Command: "Text", Description: "Viết ghi chú chữ"},
			{Key: "DL", Command: "Detail Line", Description: "Vẽ đường nét 2D"},
		},
	},
}

// BIMCategories lists the object categories covered by the BIM information
// standard consulting task.
var BIMCategories = []BIMCategory{
	{Name: "Tường (Walls)", Icon: "🧱", Description: "Cấu trúc, chống cháy, vật liệu"},
	{Name: "Cột (Columns)", Icon: "🏛️", Description: "Chịu lực, mã hiệu, cao độ"},
	{Name: "Dầm (Beams)", Icon: "🏗️", Description: "Mác bê tông, tiết diện, cao độ"},
	{Name: "Cửa (Doors/Windows)", Icon: "🚪", Description: "Kích thước, mã hiệu, phụ kiện"},
	{Name: "Sàn (Floors)", Icon: "📐", Description: "Cấu tạo lớp, hoàn thiện, diện tích"},
	{Name: "MEP (Mechanical)", Icon: "⚙️", Description: "Hệ thống, lưu lượng, công suất"},
}

// CommonErrors is the troubleshooting catalog searched from the sidebar.
var CommonErrors = []CommonError{
	{
		Title: "Mất thanh Properties/Project Browser?",
		Solutions: []string{
			"Chuột phải vào màn hình > chọn Properties hoặc Project Browser",
			"Vào tab View > User Interface > Tích chọn thanh bị mất.",
		},
	},
	{
		Title: "Không thấy nét khuất của dầm?",
		Solutions: []string{
			"Chỉnh Discipline sang Structural",
			"Kiểm tra cài đặt Show Hidden Lines trong View Properties.",
		},
	},
	{
		Title: "Lỗi Font chữ khi in PDF?",
		Solutions: []string{
			"Đổi chương trình in PDF khác (Nitro, Adobe, Foxit)",
			"Kiểm tra bộ font tiếng Việt cài trong máy.",
		},
	},
}

// Manuals is the fixed catalog of source documents, in sidebar order.
var Manuals = []Manual{
	{
		ID:       ManualRevit01,
		Title:    "Basic Modeling",
		ColorTag: "#059669",
		URL:      "https://drive.google.com/file/d/1MSrXEHQt58-nPhKIICOO1dMoL6VG1shX/view?usp=drive_link",
		Source:   "VCC",
		Topics:   []string{"Hệ định vị & Lưới trục", "Dựng Cột, Tường, Cửa", "Cài đặt Template"},
	},
	{
		ID:       ManualRevit02,
		Title:    "Annotation & BIM",
		ColorTag: "#D97706",
		URL:      "https://drive.google.com/file/d/1Hfhl1d_Xs5whtYKlrvxL9btdcZTenOBi/view?usp=drive_link",
		Source:   "VCC",
		Topics:   []string{"Kích thước & Ghi chú", "Quản lý hiển thị (VG)", "Worksharing"},
	},
	{
		ID:       ManualErrors,
		Title:    "Troubleshooting",
		ColorTag: "#E11D48",
		URL:      "https://drive.google.com/file/d/11ShF9H2tSBqY6t52ZH_eN7PvqYlOhEZs/view?usp=sharing",
		Source:   "Huytraining",
		Topics:   []string{"Lỗi cài đặt & Crack", "Mất thanh công cụ", "Thủ thuật in PDF"},
	},
}

// ManualByID returns the manual with the given id, or nil.
func ManualByID(id ManualID) *Manual {
	for i := range Manuals {
		if Manuals[i].ID == id {
			return &Manuals[i]
		}
	}
	return nil
}
