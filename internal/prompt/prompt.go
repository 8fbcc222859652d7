// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt builds the natural-language instructions sent to the model:
// the fixed system instruction describing the three source manuals, and the
// canned prompts generated from sidebar selections. All functions are pure;
// their output enters the transcript as if the user had typed it.
package prompt

import (
	"fmt"

	"github.com/vccbim/revitassist-tui/internal/reference"
)

// SystemInstruction is the fixed system prompt for every session. It defines
// the knowledge sources, the document priority rules, and the mandatory
// output-formatting contract (### headings, 📌 citation footers) that
// internal/render parses back out of the answers.
const SystemInstruction = `
Bạn là "Trợ lý ảo BIM" thuộc đội ngũ kỹ thuật cao cấp của Viettel Construction (VCC).
Nguồn tri thức của bạn bao gồm 3 tài liệu quan trọng sau:

TÀI LIỆU 01: SỔ TAY REVIT-01 (BASIC MODELING) - Tác giả ThS. LÊ NGỌC GIANG
TÀI LIỆU 02: SỔ TAY REVIT-02 (ANNOTATION & COLLABORATION) - Tác giả ThS. LÊ NGỌC GIANG
TÀI LIỆU 03 (DỰ PHÒNG CHO LỖI): TỔNG HỢP LỖI THƯỜNG GẶP TRONG REVIT - Biên soạn NGUYỄN HOÀNG ANH

NHIỆM VỤ ĐẶC BIỆT: TƯ VẤN TIÊU CHUẨN THÔNG TIN BIM
- Khi người dùng hỏi về "Thông tin bắt buộc" hoặc "Tiêu chuẩn thông tin" cho các đối tượng Revit (Category), bạn phải cung cấp danh sách các tham số (Parameters) cần thiết để mô hình đạt chuẩn BIM Level 2 hoặc chuẩn VCC.
- Các nhóm thông tin cần tư vấn: Identity Data (Mã hiệu, Mô tả), Phasing (Giai đoạn), Dimensions (Kích thước), Structural (Chịu lực), IFC Parameters (Xuất mô hình).
- Luôn nhắc nhở người dùng đảm bảo tính nhất quán của dữ liệu để phục vụ bóc tách khối lượng (Take-off).

QUY TẮC ƯU TIÊN:
1. Luôn ưu tiên tra cứu giải pháp trong SỔ TAY REVIT-01 và REVIT-02 trước.
2. NẾU thông tin về lỗi/sự cố không có trong 2 sổ tay trên, hãy sử dụng giải pháp từ TÀI LIỆU 03 (Huytraining).

NHIỆM VỤ & QUY TẮC TRẢ LỜI:
1. CUNG CẤP SỐ TRANG (BẮT BUỘC): Trích dẫn chính xác (Trang X).
2. SỬ DỤNG TIÊU ĐỀ: Định dạng ### cho các mục lớn.
3. ĐỊNH DẠNG TRÍCH DẪN NGUỒN (CUỐI CÂU):
   📌 Nguồn tham khảo: Sổ tay Revit-01 | [Nội dung] | Trang [X]
   📌 Nguồn tham khảo: Sổ tay Revit-02 | [Nội dung] | Trang [X]
   📌 Nguồn tham khảo: Sổ tay Lỗi thường gặp | [Nội dung] | Trang [X]
4. Ngôn ngữ: Tiếng Việt kỹ thuật, chuyên nghiệp.
`

// Welcome is the seeded first transcript message shown before any exchange.
const Welcome = "🏗️ Chào đồng nghiệp! Tôi là trợ lý BIM từ **Viettel Construction**.\n\n" +
	"Dữ liệu của tôi đã được đồng bộ hóa với:\n" +
	"- 📗 **Sổ tay Revit-01**: Chuyên sâu về kỹ thuật dựng hình 3D chuẩn BIM.\n" +
	"- 📘 **Sổ tay Revit-02**: Chuyên sâu về triển khai hồ sơ, quản lý hiển thị và làm việc nhóm.\n" +
	"- 📙 **Sổ tay Lỗi thường gặp**: Giải pháp khắc phục sự cố kỹ thuật Revit.\n\n" +
	"Bạn cần tra cứu quy trình hay giải quyết sự cố kỹ thuật nào trong dự án hôm nay?"

// ForShortcutGroup asks for a summary of one command group.
func ForShortcutGroup(g reference.ShortcutGroup) string {
	return fmt.Sprintf("Tổng hợp các lệnh tắt phổ biến trong revit thuộc nhóm lệnh %s", g.Category)
}

// ForBIMCategory asks for the mandatory BIM parameters of one object category.
func ForBIMCategory(c reference.BIMCategory) string {
	return fmt.Sprintf(
		"Hãy liệt kê các thông tin (parameters) bắt buộc phải nhập cho đối tượng %s theo tiêu chuẩn BIM VCC để đảm bảo mô hình mang đầy đủ thông tin. Vui lòng trình bày dưới dạng bảng hoặc checklist chuyên nghiệp.",
		c.Name,
	)
}

// ForDiagnostic asks for a step-by-step fix of a cataloged error.
func ForDiagnostic(e reference.CommonError) string {
	return fmt.Sprintf(
		"Tôi đang gặp vấn đề: %q. Dựa trên các tài liệu Sổ tay Revit (ưu tiên) hoặc Sổ tay Lỗi thường gặp, hãy hướng dẫn khắc phục chi tiết kèm số trang.",
		e.Title,
	)
}

// ForManualTopic asks for guidance on one topic from the manual catalog.
func ForManualTopic(topic string) string {
	return fmt.Sprintf("Dựa trên các tài liệu sẵn có, hãy hướng dẫn về: %s", topic)
}

// Suggestion is a one-tap canned query shown above the input box.
type Suggestion struct {
	Label string
	Query string
}

// Suggestions are the canned queries offered above the input box.
var Suggestions = []Suggestion{
	{Label: "⚡ Phím tắt WA", Query: "Hướng dẫn sử dụng lệnh vẽ tường (WA) và các tùy chọn đi kèm."},
	{Label: "🛠️ Lỗi hiển thị", Query: "Tại sao tôi không thấy đối tượng trên mặt bằng dù đã bật trong VG?"},
	{Label: "📏 Ghi chú Dim", Query: "Quy chuẩn ghi kích thước (Dimension) theo Sổ tay Revit-02."},
	{Label: "👥 Làm việc nhóm", Query: "Quy trình khởi tạo Worksharing và Sync dữ liệu chuẩn BIM VCC."},
	{Label: "🧱 Quản lý Family", Query: "Cách tạo và quản lý tham số cho Family cơ bản trong Sổ tay 01."},
}
