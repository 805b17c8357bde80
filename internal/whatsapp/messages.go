package whatsapp

import "fmt"

// Message templates sent to requesters on lifecycle transitions. Texts are
// fixed Indonesian copy; *bold* markers are WhatsApp formatting.

// ReceivedMessage tells the requester their report passed admin verification.
func ReceivedMessage(name, title string) string {
	return fmt.Sprintf(
		"Halo %s,\n\nLaporan Anda dengan judul *\"%s\"* telah *DITERIMA* oleh admin dan sedang menunggu persetujuan pimpinan.\n\nTerima kasih - LaporPak",
		name, title,
	)
}

// RejectedMessage tells the requester their report was rejected.
func RejectedMessage(name, title string) string {
	return fmt.Sprintf(
		"Halo %s,\n\nMohon maaf, laporan Anda *\"%s\"* telah *DITOLAK* oleh admin karena alasan tertentu.\n\nTerima kasih - LaporPak",
		name, title,
	)
}

// ApprovedMessage tells the requester leadership approved execution.
func ApprovedMessage(title string) string {
	return fmt.Sprintf(
		"Kabar Baik! Laporan *\"%s\"* telah *DISETUJUI* oleh Pimpinan dan tim teknisi akan segera meluncur ke lokasi untuk perbaikan.\n\nMohon ditunggu - LaporPak",
		title,
	)
}

// CompletedMessage tells the requester the work is done.
func CompletedMessage(title string) string {
	return fmt.Sprintf(
		"Selesai! Laporan Anda *\"%s\"* telah dinyatakan *SELESAI*. Terima kasih telah berpartisipasi membangun lingkungan kita.\n\nSalam - LaporPak",
		title,
	)
}
