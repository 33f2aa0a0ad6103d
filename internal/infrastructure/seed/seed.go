// Package seed 固定的初始数据集
// 启动和重置时使用,每次调用都返回新的副本
package seed

import (
	"time"

	"github.com/xiebiao/booklist/internal/domain/book"
	"github.com/xiebiao/booklist/internal/domain/note"
)

// Books 10本种子图书,顺序即ID顺序(1..10),封面为空
func Books() []book.Book {
	return []book.Book{
		newBook("Dune", "Frank Herbert", "Chilton Books", 1965, true, true, 5, "Science-Fiction"),
		newBook("Le Meilleur des mondes", "Aldous Huxley", "Chatto & Windus", 1932, false, false, 4, "Dystopie"),
		newBook("1984", "George Orwell", "Secker & Warburg", 1949, true, true, 5, "Dystopie"),
		newBook("Fondation", "Isaac Asimov", "Gnome Press", 1951, false, false, 3, "Science-Fiction"),
		newBook("Les Misérables", "Victor Hugo", "A. Lacroix, Verboeckhoven & Cie", 1862, false, false, 4, "Classique"),
		newBook("L'Étranger", "Albert Camus", "Gallimard", 1942, true, false, 5, "Philosophique"),
		newBook("Harry Potter à l'école des sorciers", "J.K. Rowling", "Bloomsbury", 1997, true, true, 5, "Fantasy"),
		newBook("Le Seigneur des Anneaux", "J.R.R. Tolkien", "Allen & Unwin", 1954, true, true, 5, "Fantasy"),
		newBook("Neuromancien", "William Gibson", "Ace Books", 1984, false, false, 4, "Cyberpunk"),
		newBook("Le Petit Prince", "Antoine de Saint-Exupéry", "Reynal & Hitchcock", 1943, true, true, 5, "Conte philosophique"),
	}
}

// Notes 8条种子笔记,BookID指向Books()的顺序编号
func Notes() []note.Note {
	return []note.Note{
		newNote(1, "Un classique de la SF politique et écologique.", 2024, time.May, 10),
		newNote(1, "Très dense mais fascinant.", 2024, time.May, 12),
		newNote(3, "Une vision glaçante du totalitarisme.", 2024, time.April, 1),
		newNote(5, "Des descriptions magnifiques, mais parfois un peu longues.", 2024, time.March, 14),
		newNote(7, "Idéal pour les plus jeunes lecteurs, mais plaisant à tout âge.", 2024, time.February, 2),
		newNote(8, "Un univers légendaire, épique et intemporel.", 2024, time.January, 20),
		newNote(10, "Poétique, simple et profond à la fois.", 2024, time.June, 15),
		newNote(6, "La philosophie de l'absurde à son sommet.", 2024, time.July, 21),
	}
}

func newBook(name, author, editor string, year int, read, favorite bool, rating int, theme string) book.Book {
	return book.Book{
		Name:     name,
		Author:   author,
		Editor:   editor,
		Year:     year,
		Read:     read,
		Favorite: favorite,
		Rating:   &rating,
		Theme:    &theme,
	}
}

func newNote(bookID uint, content string, year int, month time.Month, day int) note.Note {
	return note.Note{
		BookID:    bookID,
		Content:   content,
		CreatedAt: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}
