package ai

import (
	"fmt"
	"strings"
)

// Prompts are in Indonesian because the whole product speaks to Indonesian
// market vendors and SPPG kitchens. The JSON schemas embedded below are
// contracts: model.go mirrors them field for field.

func BuildInventoryAnalysisPrompt() string {
	return `
Kamu adalah AI Inventory Cerdas untuk pedagang pasar tradisional Indonesia.
Tugasmu adalah melihat gambar stok dagangan dan mengekstrak data logistik.

Lakukan langkah berpikir ini:
1. IDENTIFIKASI: Barang apa ini? (Gunakan nama lokal Indonesia, misal: Bawang Merah, Cabe Rawit).
2. HITUNG (COUNTING):
   - Hitung jumlah objek yang terlihat dengan teliti.
   - Jika barangnya satuan (seperti Bawang, Telur, Buah), hitung per butir/pcs.
   - Jika barangnya dalam wadah (seperti Beras dalam karung), hitung wadahnya.
   - Jika bertumpuk sangat banyak (seperti cabe sekilo), berikan estimasi "1" dengan satuan "Tumpukan/Kg".
3. QUALITY CHECK: Lihat warna, tekstur, dan kulit. Apakah segar? Ada busuk?
4. EXPIRY PREDICTION: Estimasi sisa hari layak konsumsi di suhu ruang.

Output HANYA JSON raw (tanpa markdown):
{
    "items": [
        {
            "name": "Nama Barang",
            "qty": (integer),
            "unit": "Pcs/Ikat/Karung/Kg",
            "freshness": "Sangat Segar/Cukup/Layum/Busuk",
            "expiry_days": (integer sisa hari),
            "visual_reasoning": "Penjelasan singkat kenapa dinilai segitu"
        }
    ]
}
`
}

func BuildMenuRecommendationPrompt(ingredients []string) string {
	return fmt.Sprintf(`
Kamu adalah Ahli Gizi dan Koki untuk program Makan Bergizi Gratis (MBG).
STOK BAHAN TERSEDIA di gudang: %s.

Tugasmu:
1. Rancang Menu Makan Siang Terbaik untuk anak sekolah, berdasarkan bahan yang tersedia.
2. Sesuaikan hidangan berdasarkan bahan, jangan memaksakan bahan untuk membuat hidangan yang aneh.
3. Kepatuhan: Menu harus memenuhi syarat Murah, Bergizi, Praktis, dan Lokal.

Output HANYA dalam format JSON raw (tanpa markdown):
{
    "recommendations": [
        {
            "menu_name": "Nama Menu Final",
            "description": "Deskripsi singkat tentang menu ini.",
            "ingredients": ["List bahan yang digunakan dari stok"],
            "ingredients_needed": ["Sebutkan BAHAN dan KUANTITAS spesifik (Contoh: Ayam 5 kg)"],
            "cooking_steps": ["Langkah 1: ...", "Langkah 2: ..."],
            "nutrition": {
                "calories": "Estimasi Kalori (misal: 500 kcal)",
                "protein": "Estimasi Protein (misal: 20g)",
                "carbs": "Estimasi Karbohidrat",
                "fats": "Estimasi Lemak"
            },
            "reason": "Jelaskan kenapa menu ini cocok."
        }
    ]
}
`, strings.Join(ingredients, ", "))
}

func BuildShelfLifePrompt(menuName string) string {
	return fmt.Sprintf(`
Kamu adalah Ahli Keamanan Pangan & Higiene Sanitasi.

Tugas: Analisis keamanan pangan untuk menu masakan matang: "%s".
Berikan estimasi umur simpan (Shelf Life) dalam DUA kondisi, tips penyimpanan, DAN estimasi nutrisi per porsi.

Output HANYA JSON raw (tanpa markdown):
{
    "room_temp_hours": (integer, estimasi tahan berapa jam di suhu ruang),
    "fridge_hours": (integer, estimasi tahan berapa jam jika masuk kulkas),
    "risk_factor": "Rendah/Sedang/Tinggi",
    "storage_tips": "Saran singkat, padat, teknis",
    "nutrition": {
        "calories": "Estimasi Kalori",
        "protein": "Estimasi Protein",
        "carbs": "Estimasi Karbohidrat",
        "fats": "Estimasi Lemak"
    }
}
`, menuName)
}

func BuildCookedMealAnalysisPrompt() string {
	return `
Kamu adalah Ahli Keamanan Pangan & Gizi.
Analisis foto makanan matang (Lunch Box/Piring) ini.

Tugas:
1. Deteksi menu apa ini.
2. SAFETY CHECK: Apakah terlihat basi? (Lendir, warna aneh, jamur, bau).
3. NUTRITION: Estimasi kalori & nutrisi makro sepiring ini.

PENTING:
- is_safe: true jika makanan AMAN, false jika ada tanda pembusukan atau tidak layak konsumsi
- spoilage_signs: isi dengan tanda yang terlihat, kosongkan [] jika aman
- Nilai nutrition_estimate harus ANGKA saja
- Gunakan key "fats" bukan "fat"

Output HANYA JSON dengan format ini:
{
    "menu_name": "Nama menu berdasarkan analisis gambar",
    "is_safe": true atau false,
    "spoilage_signs": ["tanda1"] atau [],
    "nutrition_estimate": {
        "calories": "estimasi angka",
        "protein": "estimasi angka",
        "carbs": "estimasi angka",
        "fats": "estimasi angka"
    },
    "visual_quality": "Deskripsi kualitas visual"
}
`
}

func BuildChefSystemPrompt(kitchenStock, marketStock string) string {
	return fmt.Sprintf(`
Kamu adalah "Chef Bekal", asisten dapur AI yang ahli manajemen logistik.

DATA INVENTARIS DAPUR SAYA (Gunakan ini dulu):
%s

DATA PASAR & VENDOR TERDEKAT (Gunakan ini jika stok dapur kurang):
%s

TUGAS KAMU:
1. Saat user minta resep, list dulu bahan yang SUDAH ADA di dapur beserta kualitasnya.
2. Jika ada bahan yang kurang, cari di DATA PASAR. Prioritaskan vendor dengan jarak TERDEKAT.
3. Berikan resep masakan lengkapnya.

Gaya bahasa: Ramah, profesional, dan sangat membantu secara operasional.
`, kitchenStock, marketStock)
}
