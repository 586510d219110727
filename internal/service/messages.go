package service

// Client-facing messages. The API speaks Indonesian.
const (
	MsgWelcome         = "Selamat datang di API Cuci Sepatu!"
	MsgFetchFailed     = "Gagal mengambil data"
	MsgCreateFailed    = "Gagal menambah data"
	MsgUpdateFailed    = "Gagal memperbarui data"
	MsgDeleteFailed    = "Gagal menghapus data"
	MsgNotFound        = "Data tidak ditemukan"
	MsgIncomplete      = "Data tidak lengkap. 'nama', 'status', dan 'tanggalMasuk' diperlukan."
	MsgNothingToUpdate = "Tidak ada data untuk diperbarui"
	MsgCreated         = "Data sepatu berhasil ditambahkan."
	MsgUpdated         = "Status sepatu berhasil diperbarui."
	MsgDeleted         = "Data sepatu berhasil dihapus."
)
