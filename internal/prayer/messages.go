package prayer

import (
	"fmt"

	"github.com/islamku/muadzin/internal/model"
)

// reminderBodies holds the reminder copy, keyed by lead offset then prayer.
var reminderBodies = map[int]map[model.PrayerName]string{
	30: {
		model.Subuh:   "🌙 Persiapkan diri untuk bermunajat di waktu yang penuh keberkahan",
		model.Dzuhur:  "🌤️ Sebentar lagi waktu istirahat dan shalat Dzuhur",
		model.Ashar:   "🌅 Jangan biarkan Ashar berlalu, sudah waktunya rehat sejenak",
		model.Maghrib: "🌆 Siapkan hati menyambut pergantian hari",
		model.Isya:    "✨ Penghujung hari akan segera tiba",
	},
	15: {
		model.Subuh:   "🌄 15 menit menuju waktu Subuh, yuk bersiap!",
		model.Dzuhur:  "☀️ Sebentar lagi waktu Dzuhur tiba",
		model.Ashar:   "🌞 Waktu Ashar hampir tiba, jangan ditunda",
		model.Maghrib: "🌅 Maghrib akan segera masuk",
		model.Isya:    "🌙 Isya sebentar lagi, sempurnakan ibadah hari ini",
	},
	5: {
		model.Subuh:   "⏰ Segera bangun, waktu Subuh hampir tiba!",
		model.Dzuhur:  "⚡ 5 menit lagi Dzuhur, sudah wudhu?",
		model.Ashar:   "⚡ Ashar sebentar lagi masuk!",
		model.Maghrib: "🕌 Bersiap untuk Maghrib!",
		model.Isya:    "🌟 Isya akan berkumandang!",
	},
	0: {
		model.Subuh:   "🕌 Allahu Akbar! Waktu Subuh telah tiba",
		model.Dzuhur:  "🕌 Allahu Akbar! Waktu Dzuhur telah tiba",
		model.Ashar:   "🕌 Allahu Akbar! Waktu Ashar telah tiba",
		model.Maghrib: "🕌 Allahu Akbar! Waktu Maghrib telah tiba",
		model.Isya:    "🕌 Allahu Akbar! Waktu Isya telah tiba",
	},
}

const genericReminderBody = "Waktu shalat akan segera tiba"

// ReminderTitle is the notification title for a prayer reminder.
func ReminderTitle(name model.PrayerName) string {
	return fmt.Sprintf("Waktu %s", name)
}

// ReminderBody looks up the copy for a (lead, prayer) pair, falling back to a
// generic line when no specific copy exists for the combination.
func ReminderBody(name model.PrayerName, leadMinutes int) string {
	if byPrayer, ok := reminderBodies[leadMinutes]; ok {
		if body, ok := byPrayer[name]; ok {
			return body
		}
	}
	return genericReminderBody
}
