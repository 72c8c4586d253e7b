/*
The package sms implements everything that is necessary for sending and receiving
short messages in PDU mode through the AT command interface of a GSM modem. This
implementation is solely based on:

	[SM] ETSI GSM 03.40 (3GPP TS 23.040) - Technical realization of the SMS
	[CT] ETSI GSM 07.05 (3GPP TS 27.005) - Use of DTE-DCE interface for SMS

The PDU wire format is an ASCII string in which every octet is represented by
exactly two hex characters. Incoming SMS-DELIVER PDUs are decoded into a
DeliveredMessage, outgoing messages are built as MessageSubmit and encoded into
an SMS-SUBMIT PDU.

Abbreviations:
PDU: Protocol Data Unit
UDH: User Data Header
DCS: Data Coding Scheme

Restrictions:
The 7-bit default alphabet is supported for decoding only, without the extension
table. Outgoing messages must use the UCS-2/UTF-16 alphabet, a relative validity
period of the maximum value, and can neither request a status report nor use a
reply path. SMS-STATUS-REPORT PDUs are not supported.
*/
package sms
