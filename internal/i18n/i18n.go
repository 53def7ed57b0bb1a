// Package i18n holds the localized string tables and the lookup used by
// every user-facing message. The dictionary content is treated as opaque
// data; Translate is total and never fails.
package i18n

import "github.com/summarize-app/summarize/internal/models"

// Lang selects a string table.
type Lang string

const (
	LangAr Lang = "ar"
	LangEn Lang = "en"

	// DefaultLang is used when a stored language value is absent or unknown.
	DefaultLang = LangAr
)

// Known reports whether l is a supported language.
func (l Lang) Known() bool { return l == LangAr || l == LangEn }

// Translate returns the localized string for key. Unknown languages fall back
// to the default table; a missing key falls back to the key itself.
func Translate(lang Lang, key string) string {
	table, ok := dictionary[lang]
	if !ok {
		table = dictionary[DefaultLang]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// fileTypeKeys maps the four displayable types to their dictionary keys.
var fileTypeKeys = map[models.FileType]string{
	models.FileTypeSummary:  "typeSummary",
	models.FileTypeNote:     "typeNote",
	models.FileTypePastExam: "typeExam",
	models.FileTypeProject:  "typeProject",
}

// FileTypeLabel returns the localized label for a file type. Unknown types
// return their raw string form.
func FileTypeLabel(lang Lang, t models.FileType) string {
	key, ok := fileTypeKeys[t]
	if !ok {
		return string(t)
	}
	return Translate(lang, key)
}

var dictionary = map[Lang]map[string]string{
	LangAr: {
		"siteName":            "Summarize",
		"browse":              "تصفح الملفات",
		"upload":              "رفع ملف",
		"login":               "تسجيل الدخول",
		"register":            "إنشاء حساب",
		"logout":              "تسجيل خروج",
		"admin":               "لوحة التحكم",
		"welcome":             "مرحباً،",
		"searchPlaceholder":   "ابحث عن اسم المادة، المحاضرة، أو الدكتور...",
		"latestFiles":         "أحدث الملفات المضافة",
		"filter":              "تصفية",
		"loading":             "جاري التحميل...",
		"download":            "تحميل الملف",
		"uploadTitle":         "رفع ملف جديد",
		"fileTitle":           "عنوان الملف",
		"subject":             "المادة الدراسية",
		"fileType":            "نوع الملف",
		"pageCount":           "عدد الصفحات",
		"submitUpload":        "رفع الملف",
		"uploading":           "جاري الرفع...",
		"successUpload":       "تم رفع الملف بنجاح!",
		"description":         "الوصف",
		"uploadedBy":          "رفع بواسطة",
		"cardDate":            "التاريخ",
		"cardSize":            "الحجم",
		"cardDownloads":       "التحميلات",
		"cardUploadedBy":      "المرفوع بواسطة",
		"viewMore":            "عرض المزيد",
		"unknown":             "مجهول",
		"fileNotFound":        "الملف غير موجود",
		"downloadStarted":     "جاري التحميل!",
		"files":               "الملفات",
		"fileNotAvailable":    "بيانات الملف غير متاحة للتحميل",
		"downloadError":       "خطأ في تحميل الملف",
		"typeSummary":         "ملخص",
		"typeNote":            "مذكرة",
		"typeExam":            "امتحان سابق",
		"typeProject":         "مشروع",
		"loginTitle":          "تسجيل الدخول",
		"email":               "البريد الإلكتروني",
		"password":            "كلمة المرور",
		"registerTitle":       "إنشاء حساب جديد",
		"fullName":            "الاسم الكامل",
		"confirmPassword":     "تأكيد كلمة المرور",
		"mustLoginToDownload": "يجب تسجيل الدخول لتحميل الملف",
		"passwordMismatch":    "كلمتا المرور غير متطابقتين",
		"users":               "المستخدمين",
		"adminTitle":          "قاعدة البيانات (Admin)",
		"dangerZone":          "منطقة الخطر",
		"clearData":           "حذف جميع البيانات",
		"registeredUsers":     "المستخدمون المسجلون",
		"uploadedFiles":       "الملفات المرفوعة",
		"noUsers":             "لا يوجد مستخدمين مسجلين",
		"noFiles":             "لا توجد ملفات مرفوعة",
		"confirmClear":        "هل أنت متأكد من حذف جميع المستخدمين والملفات؟",
		"date":                "التاريخ",
		"size":                "الحجم",
		"reviewQueue":         "قائمة المراجعة",
		"pendingReview":       "الملف سيكون قيد المراجعة من قبل المشرفين قبل نشره",
		"approve":             "قبول",
		"reject":              "رفض",
		"filterType":          "نوع الملف",
		"filterSubject":       "المادة",
		"clearFilters":        "إزالة التصفية",
		"success":             "تم بنجاح",
		"userEdited":          "تم تعديل المستخدم",
		"fileEdited":          "تم تعديل الملف",
		"newFilesAlert":       "تم إضافة ملفات جديدة منذ زيارتك الأخيرة!",
		"viewDetails":         "عرض التفاصيل",
		"close":               "إغلاق",
		"downloads":           "تحميل",
		"role":                "الدور",
		"userId":              "معرف المستخدم",
		"userDetails":         "معلومات المستخدم",
		"userNotFound":        "المستخدم غير موجود",
		"profile":             "الملف الشخصي",
		"save":                "حفظ",
		"cancel":              "إلغاء",
		"invalidName":         "الاسم: حروف وأرقام فقط (الحد الأدنى حرفين)",
		"invalidEmail":        "البريد الإلكتروني غير صحيح",
		"unsafeContent":       "محتوى غير آمن",
		"mustLoginFirst":      "يجب تسجيل الدخول أولاً",
		"emailAlreadyInUse":   "هذا البريد مستخدم بالفعل",
		"changesSaved":        "تم حفظ التغييرات",
	},
	LangEn: {
		"siteName":            "Summarize",
		"browse":              "Browse Files",
		"upload":              "Upload File",
		"login":               "Login",
		"register":            "Register",
		"logout":              "Logout",
		"admin":               "Dashboard",
		"welcome":             "Welcome,",
		"searchPlaceholder":   "Search for subject, lecture, or professor...",
		"latestFiles":         "Latest Added Files",
		"filter":              "Filter",
		"loading":             "Loading...",
		"download":            "Download File",
		"uploadTitle":         "Upload New File",
		"fileTitle":           "File Title",
		"subject":             "Subject",
		"fileType":            "File Type",
		"pageCount":           "Page Count",
		"submitUpload":        "Upload File",
		"uploading":           "Uploading...",
		"successUpload":       "File uploaded successfully!",
		"description":         "Description",
		"uploadedBy":          "Uploaded by",
		"cardDate":            "Date",
		"cardSize":            "Size",
		"cardDownloads":       "Downloads",
		"cardUploadedBy":      "Uploaded by",
		"viewMore":            "View More",
		"unknown":             "Unknown",
		"fileNotFound":        "File not found",
		"downloadStarted":     "Download started!",
		"files":               "Files",
		"fileNotAvailable":    "File data not available for download",
		"downloadError":       "Error downloading file",
		"typeSummary":         "Summary",
		"typeNote":            "Note",
		"typeExam":            "Past Exam",
		"typeProject":         "Project",
		"loginTitle":          "Login",
		"email":               "Email Address",
		"password":            "Password",
		"registerTitle":       "Create New Account",
		"fullName":            "Full Name",
		"confirmPassword":     "Confirm Password",
		"mustLoginToDownload": "You must be logged in to download files",
		"passwordMismatch":    "Passwords do not match",
		"users":               "Users",
		"adminTitle":          "Database (Admin)",
		"dangerZone":          "Danger Zone",
		"clearData":           "Delete All Data",
		"registeredUsers":     "Registered Users",
		"uploadedFiles":       "Uploaded Files",
		"noUsers":             "No registered users",
		"noFiles":             "No uploaded files",
		"confirmClear":        "Are you sure you want to delete all users and files?",
		"date":                "Date",
		"size":                "Size",
		"reviewQueue":         "Review Queue",
		"pendingReview":       "Your file will be under review by administrators before publishing",
		"approve":             "Approve",
		"reject":              "Reject",
		"filterType":          "File Type",
		"filterSubject":       "Subject",
		"clearFilters":        "Clear Filters",
		"success":             "Success",
		"userEdited":          "User updated",
		"fileEdited":          "File updated",
		"newFilesAlert":       "New files added since last visit!",
		"viewDetails":         "View Details",
		"close":               "Close",
		"downloads":           "Downloads",
		"role":                "Role",
		"userId":              "User ID",
		"userDetails":         "User Details",
		"userNotFound":        "User not found",
		"profile":             "Profile",
		"save":                "Save",
		"cancel":              "Cancel",
		"invalidName":         "Name: letters and spaces only (min 2 chars)",
		"invalidEmail":        "Invalid email address",
		"unsafeContent":       "Invalid input",
		"mustLoginFirst":      "Must login first",
		"emailAlreadyInUse":   "Email already in use",
		"changesSaved":        "Changes saved",
	},
}
